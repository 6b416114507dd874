package screenscraper

import (
	"encoding/json"
	"strings"

	"romscraper/pkg/cache"
)

// The provider's V2 serializer occasionally emits a trailing comma just
// before the closing braces at the end of the document, at one of two
// nesting depths. Each repair pass patches exactly one known byte
// sequence and nothing else. This is a targeted fix for a known-buggy
// upstream serializer, not a lenient JSON parser.
var repairPasses = []struct {
	broken string
	fixed  string
}{
	{broken: "],\n\t\t}", fixed: "]\n\t\t}"},
	{broken: "\t\t},\n\t\t}", fixed: "\t\t}\n\t\t}"},
}

// decodeWithRepair decodes body as JSON, applying the bounded textual
// repairs on failure. Returns the decoded record and the number of
// repair passes applied, or the last decode error once every attempt
// has failed.
func decodeWithRepair(body []byte) (cache.Record, int, error) {
	var record cache.Record
	if err := json.Unmarshal(body, &record); err == nil {
		return record, 0, nil
	}

	text := string(body)
	var lastErr error
	for i, pass := range repairPasses {
		text = strings.ReplaceAll(text, pass.broken, pass.fixed)
		record = nil
		err := json.Unmarshal([]byte(text), &record)
		if err == nil {
			return record, i + 1, nil
		}
		lastErr = err
	}

	return nil, len(repairPasses), lastErr
}
