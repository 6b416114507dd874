package screenscraper

import (
	"romscraper/pkg/cache"
)

// FieldResolver turns a cached game record into presentation metadata.
// Localized fields resolve against the region and language fallback
// chains with the user preference promoted to the front. Resolution is
// pure and cheap, so metadata is recomputed from the cached record on
// every request instead of being cached itself.
type FieldResolver struct {
	regions   Chain
	languages Chain
}

// NewFieldResolver builds a resolver for the given user preferences.
// Empty preferences fall back to the chains' natural order.
func NewFieldResolver(region, language string) *FieldResolver {
	return &FieldResolver{
		regions:   NewChain(region, RegionChain),
		languages: NewChain(language, LanguageChain),
	}
}

// Metadata resolves every metadata field of the record. Fields that
// cannot be resolved get their documented defaults; the content rating
// is always the default since the provider's classification data is
// too sparse to be useful.
func (r *FieldResolver) Metadata(record cache.Record) MetadataRecord {
	return MetadataRecord{
		Title:         r.title(record),
		Year:          r.year(record),
		Genre:         r.genre(record),
		Developer:     developer(record),
		PlayerCount:   playerCount(record),
		ContentRating: DefaultRating,
		Plot:          r.plot(record),
	}
}

func (r *FieldResolver) title(record cache.Record) string {
	if text, ok := resolveLocalized(treeList(record, "noms"), "region", r.regions); ok {
		return text
	}
	return DefaultTitle
}

// year keeps only the leading year of the resolved release date, which
// the provider formats as YYYY-MM-DD or plain YYYY.
func (r *FieldResolver) year(record cache.Record) string {
	text, ok := resolveLocalized(treeList(record, "dates"), "region", r.regions)
	if !ok {
		return DefaultYear
	}
	if len(text) > 4 {
		return text[:4]
	}
	return text
}

// genre resolves the first genre's localized names. The provider lists
// genres most-specific first.
func (r *FieldResolver) genre(record cache.Record) string {
	genres := treeList(record, "genres")
	if len(genres) == 0 {
		return DefaultGenre
	}
	first, ok := genres[0].(map[string]interface{})
	if !ok {
		return DefaultGenre
	}
	noms, _ := first["noms"].([]interface{})
	if text, ok := resolveLocalized(noms, "langue", r.languages); ok {
		return text
	}
	return DefaultGenre
}

func (r *FieldResolver) plot(record cache.Record) string {
	if text, ok := resolveLocalized(treeList(record, "synopsis"), "langue", r.languages); ok {
		return text
	}
	return DefaultPlot
}

func developer(record cache.Record) string {
	if dev := treeMap(record, "developpeur"); dev != nil {
		if text := treeString(dev, "text"); text != "" {
			return text
		}
	}
	return DefaultDeveloper
}

// playerCount passes the provider's value through unmodified. The
// provider uses free-form ranges like "1-4" and normalizing them is
// the caller's business.
func playerCount(record cache.Record) string {
	if players := treeMap(record, "joueurs"); players != nil {
		if text := treeString(players, "text"); text != "" {
			return text
		}
	}
	return DefaultPlayerCount
}

// resolveLocalized walks the fallback chain in order and returns the
// text of the first entry tagged with a chain code. Entries missing
// the tag key or the text are skipped.
func resolveLocalized(entries []interface{}, tagKey string, chain Chain) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}
	for _, code := range chain {
		for _, raw := range entries {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if treeString(entry, tagKey) != code {
				continue
			}
			if text := treeString(entry, "text"); text != "" {
				return text, true
			}
		}
	}
	return "", false
}
