package scraper

import (
	"romscraper/pkg/checksum"
	"romscraper/pkg/screenscraper"
	"romscraper/pkg/status"
)

// ProviderClient is the slice of the provider API the engine drives.
// It is an interface so engine tests can run against a scripted client
// without HTTP.
type ProviderClient interface {
	ResolveGame(sums *checksum.Record, platform, cacheKey string, rep *status.Report) *screenscraper.Candidate
	SearchGames(term, platform string, rep *status.Report) []screenscraper.Candidate
}

// ChecksumFunc computes the checksum record for a ROM file. Swapped in
// tests so fixture files are not needed.
type ChecksumFunc func(path string) (*checksum.Record, error)
