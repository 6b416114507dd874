package screenscraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"romscraper/pkg/cache"
)

func TestRedactURLStripsAllSecrets(t *testing.T) {
	raw := URLGameInfo +
		"?devid=dev&devpassword=devpass&softname=romscraper&output=json&ssid=user&sspassword=hunter2" +
		"&romtype=rom&systemeid=1&crc=ABCD1234"

	clean := RedactURL(raw)

	assert.NotContains(t, clean, "devpass")
	assert.NotContains(t, clean, "hunter2")
	assert.NotContains(t, clean, "ssid=")
	assert.NotContains(t, clean, "output=")
	// Non-secret parameters survive.
	assert.Contains(t, clean, "romtype=rom")
	assert.Contains(t, clean, "crc=ABCD1234")
}

func TestRedactURLSecretAtEnd(t *testing.T) {
	raw := "https://example.com/api?systemeid=1&sspassword=hunter2"

	clean := RedactURL(raw)

	assert.Equal(t, "https://example.com/api?systemeid=1&", clean)
}

func TestRedactURLNoSecrets(t *testing.T) {
	raw := "https://example.com/path?foo=bar"
	assert.Equal(t, raw, RedactURL(raw))
}

func TestRedactTreeRewritesNestedURLs(t *testing.T) {
	record := cache.Record{
		"id": "123",
		"medias": []interface{}{
			map[string]interface{}{
				"type": "ss",
				"url":  "https://example.com/media?devid=dev&sspassword=hunter2&num=1",
			},
			map[string]interface{}{
				"type": "box-2D",
				"url":  "http://example.com/box?ssid=user&sspassword=hunter2",
			},
		},
		"nested": map[string]interface{}{
			"deeper": map[string]interface{}{
				"link": "https://example.com/x?sspassword=hunter2",
			},
		},
	}

	RedactTree(record)

	medias := record["medias"].([]interface{})
	first := medias[0].(map[string]interface{})
	second := medias[1].(map[string]interface{})
	assert.NotContains(t, first["url"], "hunter2")
	assert.Contains(t, first["url"], "num=1")
	assert.NotContains(t, second["url"], "hunter2")

	deeper := record["nested"].(map[string]interface{})["deeper"].(map[string]interface{})
	assert.NotContains(t, deeper["link"], "hunter2")

	// Non-URL strings are untouched, even when they mention secrets.
	assert.Equal(t, "123", record["id"])
}

func TestRedactTreeLeavesPlainStrings(t *testing.T) {
	record := cache.Record{
		"synopsis": "visit the options menu, password hunter2",
	}

	RedactTree(record)

	assert.Equal(t, "visit the options menu, password hunter2", record["synopsis"])
}

func TestRedactTreeNil(t *testing.T) {
	assert.Nil(t, RedactTree(nil))
}
