package screenscraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"romscraper/pkg/cache"
)

func nameEntry(region, text string) map[string]interface{} {
	return map[string]interface{}{"region": region, "text": text}
}

func langEntry(langue, text string) map[string]interface{} {
	return map[string]interface{}{"langue": langue, "text": text}
}

func fullRecord() cache.Record {
	return cache.Record{
		"id": "3",
		"noms": []interface{}{
			nameEntry("jp", "Sonikku za Hejjihoggu"),
			nameEntry("us", "Sonic The Hedgehog"),
			nameEntry("eu", "Sonic The Hedgehog (EU)"),
		},
		"dates": []interface{}{
			nameEntry("us", "1991-06-23"),
			nameEntry("jp", "1991-07-26"),
		},
		"genres": []interface{}{
			map[string]interface{}{
				"noms": []interface{}{
					langEntry("fr", "Plateforme"),
					langEntry("en", "Platform"),
				},
			},
			map[string]interface{}{
				"noms": []interface{}{
					langEntry("en", "Action"),
				},
			},
		},
		"synopsis": []interface{}{
			langEntry("en", "A fast blue hedgehog."),
			langEntry("fr", "Un herisson bleu rapide."),
		},
		"developpeur": map[string]interface{}{"id": float64(42), "text": "Sonic Team"},
		"joueurs":     map[string]interface{}{"text": "1-4"},
	}
}

func TestMetadataUserPreferenceWins(t *testing.T) {
	resolver := NewFieldResolver("jp", "fr")

	meta := resolver.Metadata(fullRecord())

	assert.Equal(t, "Sonikku za Hejjihoggu", meta.Title)
	assert.Equal(t, "1991", meta.Year)
	assert.Equal(t, "Plateforme", meta.Genre)
	assert.Equal(t, "Un herisson bleu rapide.", meta.Plot)
}

func TestMetadataChainFallback(t *testing.T) {
	// Preferred region "uk" has no entry; the chain falls through
	// wor (absent) and eu before us.
	resolver := NewFieldResolver("uk", "en")

	meta := resolver.Metadata(fullRecord())

	assert.Equal(t, "Sonic The Hedgehog (EU)", meta.Title)
	assert.Equal(t, "Platform", meta.Genre)
	assert.Equal(t, "A fast blue hedgehog.", meta.Plot)
}

func TestMetadataPassthroughFields(t *testing.T) {
	resolver := NewFieldResolver("us", "en")

	meta := resolver.Metadata(fullRecord())

	assert.Equal(t, "Sonic Team", meta.Developer)
	// The provider's free-form range survives unmodified; "1-4" never
	// becomes "4".
	assert.Equal(t, "1-4", meta.PlayerCount)
	assert.Equal(t, DefaultRating, meta.ContentRating)
}

func TestMetadataYearTruncation(t *testing.T) {
	resolver := NewFieldResolver("us", "en")

	record := cache.Record{
		"dates": []interface{}{nameEntry("us", "1991")},
	}
	assert.Equal(t, "1991", resolver.Metadata(record).Year)

	record["dates"] = []interface{}{nameEntry("us", "1991-06-23")}
	assert.Equal(t, "1991", resolver.Metadata(record).Year)
}

func TestMetadataAllDefaults(t *testing.T) {
	resolver := NewFieldResolver("us", "en")

	meta := resolver.Metadata(cache.Record{})

	assert.Equal(t, DefaultTitle, meta.Title)
	assert.Equal(t, DefaultYear, meta.Year)
	assert.Equal(t, DefaultGenre, meta.Genre)
	assert.Equal(t, DefaultDeveloper, meta.Developer)
	assert.Equal(t, DefaultPlayerCount, meta.PlayerCount)
	assert.Equal(t, DefaultRating, meta.ContentRating)
	assert.Equal(t, DefaultPlot, meta.Plot)
}

func TestMetadataNoChainMatch(t *testing.T) {
	resolver := NewFieldResolver("us", "en")

	record := cache.Record{
		"noms": []interface{}{nameEntry("xx", "Unreachable Title")},
	}

	// An entry tagged with a code outside the whole chain resolves to
	// the default.
	assert.Equal(t, DefaultTitle, resolver.Metadata(record).Title)
}

func TestMetadataMalformedEntriesSkipped(t *testing.T) {
	resolver := NewFieldResolver("us", "en")

	record := cache.Record{
		"noms": []interface{}{
			"not a map",
			map[string]interface{}{"region": "us"},
			nameEntry("eu", "Fallback Title"),
		},
	}

	assert.Equal(t, "Fallback Title", resolver.Metadata(record).Title)
}
