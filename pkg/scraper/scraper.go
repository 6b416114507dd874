package scraper

import (
	"fmt"
	"path/filepath"
	"strings"

	"romscraper/pkg/cache"
	"romscraper/pkg/checksum"
	"romscraper/pkg/config"
	"romscraper/pkg/logger"
	"romscraper/pkg/ratelimit"
	"romscraper/pkg/screenscraper"
	"romscraper/pkg/status"
)

// Engine orchestrates one scrape session: identify a ROM by checksum,
// then serve metadata and assets from the cached provider record.
//
// The engine is single threaded and fully sequential. One scrape runs
// as a strict chain of blocking calls, and the rate limiter's waits
// plus the quota backoff are the only places it sleeps. Callers that
// need responsiveness run the whole engine off their primary thread.
type Engine struct {
	client   ProviderClient
	store    cache.Store
	resolver *screenscraper.FieldResolver
	limiter  ratelimit.Limiter
	config   *config.Config
	log      logger.Logger
	compute  ChecksumFunc

	// enabled is decided once at construction. Missing user
	// credentials disable the whole session; every subsequent call
	// returns empty results without raising a fresh error each time.
	enabled bool

	// Selection state for the current item. Metadata and Assets read
	// the record cached under cacheKey by the last identification.
	candidate *screenscraper.Candidate
	cacheKey  string
}

// New builds an engine from the loaded configuration. The returned
// engine may be disabled when user credentials are missing; that is
// not a construction error, and Disabled reports it.
func New(cfg *config.Config) (*Engine, error) {
	log := logger.GetLogger()

	store, err := cache.NewDiskStore(cfg.Cache.Directory)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	limiter := ratelimit.NewIntervalLimiter(cfg.RateLimit.APIInterval, cfg.RateLimit.AssetInterval)
	client := screenscraper.NewClient(cfg, limiter, store, log)

	engine := &Engine{
		client:   client,
		store:    store,
		resolver: screenscraper.NewFieldResolver(cfg.Preferences.Region, cfg.Preferences.Language),
		limiter:  limiter,
		config:   cfg,
		log:      log,
		compute:  checksum.ComputeFile,
		enabled:  cfg.HasUserCredentials(),
	}
	if !engine.enabled {
		log.Warn("no user credentials configured, scraping disabled for this session")
	}
	return engine, nil
}

// Disabled reports whether the session was disabled at construction
// for missing credentials.
func (e *Engine) Disabled() bool {
	return !e.enabled
}

// Candidates identifies the ROM at path by checksum and returns at
// most one candidate. The provider contract guarantees zero or one
// match for a checksum query, so no ranking happens here.
//
// An empty result with a successful report means the provider has no
// match. The resolved record is cached under a key derived from the
// ROM's base name and platform, and the engine remembers the selection
// for the Metadata and Assets calls that follow.
func (e *Engine) Candidates(path, platform string, rep *status.Report) []screenscraper.Candidate {
	if !e.enabled {
		e.log.Debug("engine disabled, returning no candidates")
		return nil
	}

	e.candidate = nil
	e.cacheKey = sessionCacheKey(path, platform)

	sums, err := e.compute(path)
	if err != nil {
		e.log.WithError(err).WithField("path", path).Error("checksum computation failed")
		rep.Fail(fmt.Sprintf("Cannot compute checksums for %s: %v", filepath.Base(path), err))
		return nil
	}

	e.log.WithFields(map[string]interface{}{
		"rom":      sums.Name,
		"platform": platform,
		"crc":      sums.CRC,
		"size":     sums.Size,
	}).Info("identifying game")

	candidate := e.client.ResolveGame(sums, platform, e.cacheKey, rep)
	if candidate == nil || !rep.OK() {
		return nil
	}
	e.candidate = candidate
	return []screenscraper.Candidate{*candidate}
}

// Search looks up candidates by name. Search results never feed the
// cache, so a searched candidate cannot serve Metadata or Assets.
func (e *Engine) Search(term, platform string, rep *status.Report) []screenscraper.Candidate {
	if !e.enabled {
		return nil
	}
	return e.client.SearchGames(term, platform, rep)
}

// Metadata resolves the metadata fields of the currently selected
// candidate from the cached record. Cheap to recompute, so nothing is
// cached beyond the raw record itself.
func (e *Engine) Metadata(rep *status.Report) screenscraper.MetadataRecord {
	if !e.enabled {
		return screenscraper.MetadataRecord{ContentRating: screenscraper.DefaultRating}
	}
	record := e.selectedRecord()
	return e.resolver.Metadata(record)
}

// Assets extracts the assets of one normalized kind from the cached
// record. After extraction the engine waits out the asset pacing
// interval, because callers typically start downloading the chosen
// asset immediately and then ask for the next kind.
func (e *Engine) Assets(kind screenscraper.AssetKind, rep *status.Report) []screenscraper.AssetRecord {
	if !e.enabled {
		return nil
	}
	record := e.selectedRecord()

	all := screenscraper.ExtractAssets(record)
	assets := screenscraper.AssetsOfKind(all, kind)
	e.log.WithFields(map[string]interface{}{
		"kind":     string(kind),
		"total":    len(all),
		"returned": len(assets),
	}).Debug("extracted assets")

	e.limiter.Wait(ratelimit.KindAsset)
	return assets
}

// selectedRecord fetches the cached record for the current selection.
// Candidates always writes the cache before handing out a candidate,
// so a miss here is a sequencing defect in the caller, not a runtime
// condition to report.
func (e *Engine) selectedRecord() cache.Record {
	if e.candidate == nil {
		panic("scraper: no candidate selected before metadata/asset request")
	}
	record, ok := e.store.Get(e.cacheKey)
	if !ok {
		panic(fmt.Sprintf("scraper: cache miss for selected candidate key %q", e.cacheKey))
	}
	return record
}

// Flush persists any buffered cache writes.
func (e *Engine) Flush() error {
	return e.store.Flush()
}

// sessionCacheKey derives the cache key for one item from its base
// file name and platform.
func sessionCacheKey(path, platform string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "__" + platform
}
