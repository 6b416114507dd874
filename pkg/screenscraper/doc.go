// Package screenscraper implements a client for the ScreenScraper.fr
// V2 web API. It resolves ROM checksums into a single game record,
// caches the raw provider response, and derives metadata and artwork
// from the cached record.
//
// The API is unreliable in specific, known ways this client works
// around: it signals "no match" with HTTP 404 instead of an empty
// payload, it enforces per-minute (429) and per-day (430) quotas, and
// its serializer occasionally emits a trailing comma near the end of
// the document. See https://www.screenscraper.fr/webapi2.php for the
// endpoint catalogue.
package screenscraper
