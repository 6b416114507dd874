package screenscraper

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romscraper/pkg/checksum"
	"romscraper/pkg/config"
)

func testCreds() config.ProviderConfig {
	return config.ProviderConfig{
		DevID:       "dev",
		DevPassword: "devpass",
		Softname:    "romscraper",
		UserID:      "user",
		UserPass:    "pass",
	}
}

func TestGameInfoURL(t *testing.T) {
	sums := &checksum.Record{
		CRC:  "ABCD1234",
		MD5:  "0123456789abcdef0123456789abcdef",
		SHA1: "0123456789abcdef0123456789abcdef01234567",
		Size: 524288,
		Name: "Sonic The Hedgehog (USA, Europe).md",
	}

	raw := GameInfoURL(testCreds(), sums, 1)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "rom", query.Get("romtype"))
	assert.Equal(t, "1", query.Get("systemeid"))
	assert.Equal(t, "ABCD1234", query.Get("crc"))
	assert.Equal(t, "524288", query.Get("romtaille"))
	assert.Equal(t, "Sonic The Hedgehog (USA, Europe).md", query.Get("romnom"))
	assert.Equal(t, "json", query.Get("output"))
	assert.Equal(t, "user", query.Get("ssid"))
	assert.True(t, strings.HasPrefix(raw, URLGameInfo))
}

func TestGameInfoURLDiscPlatform(t *testing.T) {
	sums := &checksum.Record{Name: "game.cue"}

	raw := GameInfoURL(testCreds(), sums, 57)

	assert.Contains(t, raw, "romtype=iso")
}

func TestGameInfoURLZeroChecksums(t *testing.T) {
	// The provider accepts all-zero checksums with a zero size; the
	// request must still be well formed rather than rejected locally.
	sums := &checksum.Record{
		CRC:  "00000000",
		MD5:  strings.Repeat("0", 32),
		SHA1: strings.Repeat("0", 40),
		Size: 0,
		Name: "unknown.bin",
	}

	raw := GameInfoURL(testCreds(), sums, UnknownPlatformID)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "00000000", query.Get("crc"))
	assert.Equal(t, "0", query.Get("romtaille"))
	assert.Equal(t, "0", query.Get("systemeid"))
}

func TestGameSearchURL(t *testing.T) {
	raw := GameSearchURL(testCreds(), "sonic the hedgehog", 1)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(raw, URLGameSearch))
	assert.Equal(t, "sonic the hedgehog", parsed.Query().Get("recherche"))
}

func TestThumbnailURL(t *testing.T) {
	raw := ThumbnailURL("123", "box-2D", "us")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "123", query.Get("gameid"))
	assert.Equal(t, "box-2D us", query.Get("media"))
	assert.Equal(t, "us", query.Get("region"))
	assert.Equal(t, "338", query.Get("maxwidth"))
	assert.Equal(t, "190", query.Get("maxheight"))
}

func TestThumbnailURLNoRegion(t *testing.T) {
	raw := ThumbnailURL("123", "fanart", "")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "fanart", parsed.Query().Get("media"))
}
