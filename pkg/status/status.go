// Package status implements the shared result descriptor the engine uses
// to report failures to its caller instead of returning errors from every
// public operation.
package status

// DialogHint tells the caller what kind of user-facing presentation the
// message deserves. The engine never renders anything itself.
type DialogHint string

const (
	DialogNone         DialogHint = ""
	DialogNotification DialogHint = "notification"
	DialogMessage      DialogHint = "message"
)

// Report is a mutable descriptor shared between the caller and the engine
// for the duration of one scrape session. A fresh Report starts successful;
// engine operations flip it on failure and leave it untouched otherwise.
type Report struct {
	Success bool
	Message string
	Dialog  DialogHint
}

// New returns a successful Report carrying the given default message.
func New(msg string) *Report {
	return &Report{
		Success: true,
		Message: msg,
		Dialog:  DialogNone,
	}
}

// Fail marks the report as failed with a message.
func (r *Report) Fail(msg string) {
	r.Success = false
	r.Message = msg
	r.Dialog = DialogNotification
}

// FailWithDialog marks the report as failed and asks the caller to show a
// blocking dialog instead of a transient notification.
func (r *Report) FailWithDialog(msg string) {
	r.Success = false
	r.Message = msg
	r.Dialog = DialogMessage
}

// OK reports whether the operation chain is still successful.
func (r *Report) OK() bool {
	return r.Success
}
