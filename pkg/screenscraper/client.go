package screenscraper

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"romscraper/pkg/cache"
	"romscraper/pkg/config"
	"romscraper/pkg/errors"
	"romscraper/pkg/logger"
	"romscraper/pkg/ratelimit"
	"romscraper/pkg/status"
)

const userAgent = "romscraper/1.0"

// Client talks to the provider's V2 JSON API. It owns the HTTP
// transport, the request pacing, and the quota retry policy; callers
// receive decoded records and a status report, never raw HTTP errors.
type Client struct {
	httpClient     *http.Client
	limiter        ratelimit.Limiter
	store          cache.Store
	log            logger.Logger
	creds          config.ProviderConfig
	retryThreshold int

	// diagDir receives raw-body dumps when a response cannot be
	// decoded even after repair. Empty disables dumping.
	diagDir string

	// debugDump pretty-prints every decoded response (secrets
	// redacted) when enabled.
	debugDump bool

	// sleep is swapped out in tests so quota backoff is instant.
	sleep func(time.Duration)
}

// NewClient builds a Client from the loaded configuration. The store
// receives resolved game records; the limiter paces every outbound
// request.
func NewClient(cfg *config.Config, limiter ratelimit.Limiter, store cache.Store, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 40 * time.Second,
		},
		limiter:        limiter,
		store:          store,
		log:            log,
		creds:          cfg.Provider,
		retryThreshold: cfg.RateLimit.RetryThreshold,
		diagDir:        cfg.Cache.Directory,
		sleep:          time.Sleep,
	}
}

// SetDebugDump enables pretty-printed dumps of decoded responses into
// dir. Secrets are redacted before anything touches disk.
func (c *Client) SetDebugDump(enabled bool, dir string) {
	c.debugDump = enabled
	if dir != "" {
		c.diagDir = dir
	}
}

// FetchJSON performs a paced GET of rawURL and decodes the body,
// repairing the provider's known serialization bugs when needed.
//
// The retry loop handles the per-minute quota: HTTP 429 sleeps for
// 120*(attempt+1) seconds and retries, up to the configured threshold.
// HTTP 404 means the provider has no match. That is a successful
// lookup with an empty result, so the report stays untouched and the
// record is nil. Every other failure marks the report and returns nil.
func (c *Client) FetchJSON(rawURL string, rep *status.Report) cache.Record {
	display := RedactURL(rawURL)

	for attempt := 0; ; attempt++ {
		c.limiter.Wait(ratelimit.KindAPI)

		c.log.WithFields(map[string]interface{}{
			"url":     display,
			"attempt": attempt,
		}).Debug("requesting provider endpoint")

		resp, err := c.get(rawURL)
		if err != nil {
			c.log.WithError(err).WithField("url", display).Error("provider request failed")
			rep.Fail(fmt.Sprintf("Network error contacting provider: %v", err))
			return nil
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			c.log.WithField("url", display).Debug("provider has no match")
			return nil
		}

		if apiErr := classifyStatus(resp.StatusCode); apiErr != nil {
			if errors.IsRetryable(apiErr.Type) && attempt < c.retryThreshold {
				wait := time.Duration(120*(attempt+1)) * time.Second
				c.log.WithFields(map[string]interface{}{
					"attempt": attempt,
					"wait":    wait.String(),
				}).Warn("per-minute request quota reached, backing off")
				c.sleep(wait)
				continue
			}
			failReport(rep, apiErr)
			return nil
		}

		if readErr != nil {
			c.log.WithError(readErr).WithField("url", display).Error("reading provider response failed")
			rep.Fail(fmt.Sprintf("Network error reading provider response: %v", readErr))
			return nil
		}

		record, passes, decodeErr := decodeWithRepair(body)
		if decodeErr != nil {
			c.dumpDecodeFailure(display, body)
			rep.Fail("Provider returned a malformed response")
			return nil
		}
		if passes > 0 {
			c.log.WithFields(map[string]interface{}{
				"url":    display,
				"passes": passes,
			}).Warn("repaired malformed provider JSON")
		}

		if c.debugDump {
			c.dumpRecord(record)
		}
		return record
	}
}

func (c *Client) get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return c.httpClient.Do(req)
}

// classifyStatus maps a non-success HTTP status onto a typed error.
// Returns nil for 200; 404 is handled by the caller since it is not an
// error at all.
func classifyStatus(code int) *errors.Error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return errors.New(errors.ErrorTypeBadRequest, code,
			"Provider rejected the request. Check your API credentials in the settings.")
	case http.StatusTooManyRequests:
		return errors.New(errors.ErrorTypeQuota, code,
			"Provider request quota exceeded. Try again in a few minutes.")
	case 430:
		// Daily quota. No amount of waiting within this run clears it.
		return errors.New(errors.ErrorTypeDailyQuota, code,
			"Daily provider quota exhausted. Scraping is disabled until tomorrow.")
	default:
		return errors.New(errors.ErrorTypeUnknown, code, "Provider returned HTTP %d", code)
	}
}

// failReport marks the report for a classified API error. Credential
// and quota problems warrant a blocking dialog; anything else is a
// transient notification.
func failReport(rep *status.Report, apiErr *errors.Error) {
	switch apiErr.Type {
	case errors.ErrorTypeBadRequest, errors.ErrorTypeQuota, errors.ErrorTypeDailyQuota:
		rep.FailWithDialog(apiErr.Message)
	default:
		rep.Fail(apiErr.Message)
	}
}

// dumpDecodeFailure writes the offending URL and raw body to the
// diagnostics directory so the upstream serializer bug can be
// reported with evidence.
func (c *Client) dumpDecodeFailure(display string, body []byte) {
	c.log.WithField("url", display).Error("provider response failed to decode after repair")
	if c.diagDir == "" {
		return
	}
	if err := os.MkdirAll(c.diagDir, 0o755); err != nil {
		return
	}
	stamp := time.Now().UTC().Format("20060102T150405")
	path := filepath.Join(c.diagDir, fmt.Sprintf("decode_failure_%s.txt", stamp))
	content := fmt.Sprintf("URL: %s\n\n%s\n", display, body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		c.log.WithError(err).Warn("writing decode diagnostics failed")
		return
	}
	c.log.WithField("path", path).Info("wrote decode diagnostics")
}

// dumpRecord pretty-prints a decoded response with secrets redacted.
func (c *Client) dumpRecord(record cache.Record) {
	if c.diagDir == "" {
		return
	}
	redacted := RedactTree(record)
	data, err := json.MarshalIndent(redacted, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(c.diagDir, 0o755); err != nil {
		return
	}
	stamp := time.Now().UTC().Format("20060102T150405.000")
	path := filepath.Join(c.diagDir, fmt.Sprintf("response_%s.json", stamp))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.WithError(err).Warn("writing response dump failed")
	}
}
