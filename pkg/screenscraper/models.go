package screenscraper

import (
	"fmt"

	"romscraper/pkg/cache"
)

// Candidate is the single identification match for one checksum set.
// The provider returns one game or nothing for an identification call,
// so the candidate list never holds more than one entry.
type Candidate struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	Platform           string `json:"platform"`
	ProviderPlatformID int    `json:"provider_platform_id"`
	Order              int    `json:"order"`
}

// Default constants returned when a metadata field cannot be resolved
// from the cached record.
const (
	DefaultTitle       = ""
	DefaultYear        = ""
	DefaultGenre       = ""
	DefaultDeveloper   = ""
	DefaultPlayerCount = ""
	DefaultRating      = "NOT RATED"
	DefaultPlot        = ""
)

// MetadataRecord holds the resolved metadata fields for one game.
// Cheap to recompute from the cached record, never cached itself.
type MetadataRecord struct {
	Title         string `json:"title"`
	Year          string `json:"year"`
	Genre         string `json:"genre"`
	Developer     string `json:"developer"`
	PlayerCount   string `json:"player_count"`
	ContentRating string `json:"content_rating"`
	Plot          string `json:"plot"`
}

// AssetKind is the engine's normalized artwork category, distinct from
// the provider's own media-type vocabulary.
type AssetKind string

const (
	AssetFanart    AssetKind = "fanart"
	AssetBanner    AssetKind = "banner"
	AssetClearLogo AssetKind = "clearlogo"
	AssetTitle     AssetKind = "title"
	AssetSnap      AssetKind = "snap"
	AssetBoxFront  AssetKind = "boxfront"
	AssetBoxBack   AssetKind = "boxback"
	AssetBox3D     AssetKind = "box3d"
	AssetCartridge AssetKind = "cartridge"
	AssetMap       AssetKind = "map"
)

// AssetRecord describes one recognized media entry of the cached
// record. SourceFormat keeps the provider's declared file format so the
// caller can resolve an extension without another network round trip.
type AssetRecord struct {
	Kind         AssetKind `json:"kind"`
	DisplayName  string    `json:"display_name"`
	ThumbnailURL string    `json:"thumbnail_url"`
	FullURL      string    `json:"full_url"`
	SourceFormat string    `json:"source_format"`
}

// Accessors over the dynamically-typed cached record. The provider
// response is a deep tree of mixed maps and lists; these keep the
// resolvers readable.

// treeMap returns record[key] as a mapping, or nil.
func treeMap(record cache.Record, key string) map[string]interface{} {
	if m, ok := record[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}

// treeList returns record[key] as a sequence, or nil.
func treeList(record cache.Record, key string) []interface{} {
	if l, ok := record[key].([]interface{}); ok {
		return l
	}
	return nil
}

// treeString returns m[key] rendered as a string. The provider is not
// consistent about numeric fields; ids arrive as numbers or strings
// depending on the endpoint.
func treeString(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
