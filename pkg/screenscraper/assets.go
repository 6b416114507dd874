package screenscraper

import (
	"romscraper/pkg/cache"
)

// mediaKinds maps the provider's media-type vocabulary onto the
// engine's normalized asset kinds. The provider ships many more media
// types than this (manuals, marquees, box textures, bezels, mixes);
// anything not listed here is skipped during extraction.
var mediaKinds = map[string]AssetKind{
	"fanart":             AssetFanart,
	"screenmarqueesmall": AssetBanner,
	"steamgrid":          AssetBanner,
	"wheel":              AssetClearLogo,
	"wheel-carbon":       AssetClearLogo,
	"wheel-steel":        AssetClearLogo,
	"sstitle":            AssetTitle,
	"ss":                 AssetSnap,
	"box-2D":             AssetBoxFront,
	"box-2D-back":        AssetBoxBack,
	"box-3D":             AssetBox3D,
	"support-2D":         AssetCartridge,
	"maps":               AssetMap,
}

// ExtractAssets walks the cached record's media list and returns every
// entry with a recognized media type. Extraction is pure and cheap, so
// assets are recomputed from the cached record on demand rather than
// cached themselves. Assets carry no region or language resolution;
// the provider tags each media entry with at most one region and the
// full list is returned.
func ExtractAssets(record cache.Record) []AssetRecord {
	gameID := treeString(record, "id")
	medias := treeList(record, "medias")

	assets := make([]AssetRecord, 0, len(medias))
	for _, raw := range medias {
		media, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		mediaType := treeString(media, "type")
		kind, known := mediaKinds[mediaType]
		if !known {
			continue
		}

		region := treeString(media, "region")
		displayName := mediaType
		if region != "" {
			displayName = mediaType + " " + region
		}

		assets = append(assets, AssetRecord{
			Kind:         kind,
			DisplayName:  displayName,
			ThumbnailURL: ThumbnailURL(gameID, mediaType, region),
			FullURL:      treeString(media, "url"),
			SourceFormat: treeString(media, "format"),
		})
	}
	return assets
}

// AssetsOfKind filters assets down to one normalized kind.
func AssetsOfKind(assets []AssetRecord, kind AssetKind) []AssetRecord {
	filtered := make([]AssetRecord, 0, len(assets))
	for _, asset := range assets {
		if asset.Kind == kind {
			filtered = append(filtered, asset)
		}
	}
	return filtered
}
