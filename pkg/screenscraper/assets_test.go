package screenscraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romscraper/pkg/cache"
)

func mediaEntry(mediaType, region, url, format string) map[string]interface{} {
	return map[string]interface{}{
		"type":   mediaType,
		"region": region,
		"url":    url,
		"format": format,
	}
}

func TestExtractAssetsSkipsUnknownTypes(t *testing.T) {
	record := cache.Record{
		"id": "123",
		"medias": []interface{}{
			mediaEntry("box-2D", "us", "https://example.com/box.png", "png"),
			mediaEntry("bezel-16-9", "us", "https://example.com/bezel.png", "png"),
		},
	}

	assets := ExtractAssets(record)

	// One recognized plus one unrecognized yields exactly one asset.
	require.Len(t, assets, 1)
	assert.Equal(t, AssetBoxFront, assets[0].Kind)
}

func TestExtractAssetsFields(t *testing.T) {
	record := cache.Record{
		"id": float64(123),
		"medias": []interface{}{
			mediaEntry("ss", "jp", "https://example.com/snap.png", "png"),
		},
	}

	assets := ExtractAssets(record)
	require.Len(t, assets, 1)

	asset := assets[0]
	assert.Equal(t, AssetSnap, asset.Kind)
	assert.Equal(t, "ss jp", asset.DisplayName)
	assert.Equal(t, "https://example.com/snap.png", asset.FullURL)
	assert.Equal(t, "png", asset.SourceFormat)
	// Thumbnail is rebuilt from the image service, keyed by the
	// numeric game id.
	assert.Contains(t, asset.ThumbnailURL, URLImage)
	assert.Contains(t, asset.ThumbnailURL, "gameid=123")
}

func TestExtractAssetsNoRegion(t *testing.T) {
	record := cache.Record{
		"id": "9",
		"medias": []interface{}{
			mediaEntry("steamgrid", "", "https://example.com/grid.png", "png"),
		},
	}

	assets := ExtractAssets(record)
	require.Len(t, assets, 1)
	assert.Equal(t, AssetBanner, assets[0].Kind)
	assert.Equal(t, "steamgrid", assets[0].DisplayName)
}

func TestExtractAssetsKindGrouping(t *testing.T) {
	record := cache.Record{
		"id": "9",
		"medias": []interface{}{
			mediaEntry("wheel", "us", "u1", "png"),
			mediaEntry("wheel-carbon", "us", "u2", "png"),
			mediaEntry("wheel-steel", "us", "u3", "png"),
			mediaEntry("sstitle", "us", "u4", "png"),
		},
	}

	assets := ExtractAssets(record)
	require.Len(t, assets, 4)

	logos := AssetsOfKind(assets, AssetClearLogo)
	assert.Len(t, logos, 3)
	titles := AssetsOfKind(assets, AssetTitle)
	assert.Len(t, titles, 1)
	assert.Empty(t, AssetsOfKind(assets, AssetMap))
}

func TestExtractAssetsEmptyRecord(t *testing.T) {
	assert.Empty(t, ExtractAssets(cache.Record{}))
}
