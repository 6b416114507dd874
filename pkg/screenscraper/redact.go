package screenscraper

import (
	"regexp"
	"strings"

	"romscraper/pkg/cache"
)

// Every provider URL carries the developer and user credentials as
// query parameters, so URLs must be scrubbed before they are logged or
// persisted for diagnostics. The redacted output is never fed back into
// live requests or the cache.

// secretParams are the credential and boilerplate query parameters
// stripped from URLs.
var secretParams = []string{
	"devid",
	"devpassword",
	"softname",
	"output",
	"ssid",
	"sspassword",
}

// secretPatterns matches each secret parameter either followed by '&'
// or sitting at the end of the string.
var secretPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(secretParams)*2)
	for _, param := range secretParams {
		patterns = append(patterns,
			regexp.MustCompile(param+`=[^&]*&`),
			regexp.MustCompile(param+`=[^&]*$`),
		)
	}
	return patterns
}()

// RedactURL removes credential query parameters from a URL wherever
// they appear.
func RedactURL(rawURL string) string {
	clean := rawURL
	for _, pattern := range secretPatterns {
		clean = pattern.ReplaceAllString(clean, "")
	}
	return clean
}

// treePath addresses one value inside a nested record: a sequence of
// map keys and list indices.
type treePath []interface{}

// RedactTree walks a nested record, finds every string value that looks
// like an HTTP URL and replaces it with its redacted form in place.
// The walk is an explicit worklist in two passes so the tree is never
// mutated while it is being traversed.
func RedactTree(record cache.Record) cache.Record {
	if record == nil {
		return nil
	}

	// Pass one: collect the paths of all URL-valued strings.
	var urlPaths []treePath
	type frame struct {
		value interface{}
		path  treePath
	}
	stack := []frame{{value: map[string]interface{}(record), path: nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := f.value.(type) {
		case map[string]interface{}:
			for key, child := range v {
				childPath := append(append(treePath{}, f.path...), key)
				stack = append(stack, frame{value: child, path: childPath})
			}
		case []interface{}:
			for idx, child := range v {
				childPath := append(append(treePath{}, f.path...), idx)
				stack = append(stack, frame{value: child, path: childPath})
			}
		case string:
			if strings.HasPrefix(v, "http") {
				urlPaths = append(urlPaths, f.path)
			}
		}
	}

	// Pass two: rewrite the collected values.
	for _, path := range urlPaths {
		raw, ok := getAtPath(record, path)
		if !ok {
			continue
		}
		if s, ok := raw.(string); ok {
			setAtPath(record, path, RedactURL(s))
		}
	}

	return record
}

// getAtPath fetches the value addressed by path.
func getAtPath(record cache.Record, path treePath) (interface{}, bool) {
	var current interface{} = map[string]interface{}(record)
	for _, step := range path {
		switch node := current.(type) {
		case map[string]interface{}:
			key, ok := step.(string)
			if !ok {
				return nil, false
			}
			current = node[key]
		case []interface{}:
			idx, ok := step.(int)
			if !ok || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// setAtPath replaces the value addressed by path.
func setAtPath(record cache.Record, path treePath, value interface{}) {
	if len(path) == 0 {
		return
	}
	parent, ok := getAtPath(record, path[:len(path)-1])
	if !ok {
		return
	}
	last := path[len(path)-1]
	switch node := parent.(type) {
	case map[string]interface{}:
		if key, ok := last.(string); ok {
			node[key] = value
		}
	case []interface{}:
		if idx, ok := last.(int); ok && idx >= 0 && idx < len(node) {
			node[idx] = value
		}
	}
}
