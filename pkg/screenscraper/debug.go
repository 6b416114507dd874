package screenscraper

import (
	"encoding/json"
	"os"
	"path/filepath"

	"romscraper/pkg/cache"
	"romscraper/pkg/status"
)

// Diagnostic surface over the provider's account and listing
// endpoints. None of this sits on the identification path; it exists
// so quota problems and vocabulary drift (new regions, new media
// types) can be inspected without a debugger.

// UserInfo fetches the account record for the configured user,
// including quota standing and thread allowance.
func (c *Client) UserInfo(rep *status.Report) cache.Record {
	return c.fetchList("userInfo", URLUserInfo, rep)
}

// ListEndpoint names one of the provider's vocabulary listings.
type ListEndpoint string

const (
	ListUserLevels      ListEndpoint = "userLevels"
	ListSupportTypes    ListEndpoint = "supportTypes"
	ListRomTypes        ListEndpoint = "romTypes"
	ListGenres          ListEndpoint = "genres"
	ListRegions         ListEndpoint = "regions"
	ListLanguages       ListEndpoint = "languages"
	ListClassifications ListEndpoint = "classifications"
	ListSystems         ListEndpoint = "systems"
)

var listEndpoints = map[ListEndpoint]string{
	ListUserLevels:      URLUserLevelsList,
	ListSupportTypes:    URLSupportTypesList,
	ListRomTypes:        URLRomTypesList,
	ListGenres:          URLGenresList,
	ListRegions:         URLRegionsList,
	ListLanguages:       URLLanguagesList,
	ListClassifications: URLClassificationsList,
	ListSystems:         URLSystemsList,
}

// List fetches one vocabulary listing. Unknown endpoint names fail
// the report.
func (c *Client) List(endpoint ListEndpoint, rep *status.Report) cache.Record {
	rawURL, ok := listEndpoints[endpoint]
	if !ok {
		rep.Fail("Unknown listing endpoint " + string(endpoint))
		return nil
	}
	return c.fetchList(string(endpoint), rawURL, rep)
}

func (c *Client) fetchList(name, rawURL string, rep *status.Report) cache.Record {
	record := c.FetchJSON(ListURL(c.creds, rawURL), rep)
	if record == nil || !rep.OK() {
		return nil
	}
	if c.diagDir != "" {
		c.dumpNamed(name+".json", record)
	}
	return record
}

// dumpNamed pretty-prints a record under a fixed filename, secrets
// redacted. Listing dumps overwrite their previous run so the
// diagnostics directory holds one current copy per endpoint.
func (c *Client) dumpNamed(filename string, record cache.Record) {
	data, err := json.MarshalIndent(RedactTree(record), "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(c.diagDir, 0o755); err != nil {
		return
	}
	path := filepath.Join(c.diagDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.WithError(err).Warn("writing listing dump failed")
		return
	}
	c.log.WithField("path", path).Debug("wrote listing dump")
}
