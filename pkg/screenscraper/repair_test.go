package screenscraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidJSON(t *testing.T) {
	body := []byte(`{"response": {"jeu": {"id": "123"}}}`)

	record, passes, err := decodeWithRepair(body)
	require.NoError(t, err)
	assert.Equal(t, 0, passes)

	response := record["response"].(map[string]interface{})
	jeu := response["jeu"].(map[string]interface{})
	assert.Equal(t, "123", jeu["id"])
}

func TestDecodeRepairsTrailingCommaAfterList(t *testing.T) {
	// The provider's serializer leaves a comma after the last list at
	// the end of the document.
	body := []byte("{\n\t\"response\": {\n\t\t\"jeu\": {\n\t\t\t\"roms\": [],\n\t\t}\n\t}\n}")

	record, passes, err := decodeWithRepair(body)
	require.NoError(t, err)
	assert.Equal(t, 1, passes)
	assert.NotNil(t, record["response"])
}

func TestDecodeRepairsTrailingCommaAfterObject(t *testing.T) {
	body := []byte("{\n\t\"response\": {\n\t\t\"jeu\": {\"id\": \"1\"},\n\t\t\"ssuser\": {\n\t\t},\n\t\t}\n}")

	record, passes, err := decodeWithRepair(body)
	require.NoError(t, err)
	assert.Equal(t, 2, passes)
	assert.NotNil(t, record["response"])
}

func TestDecodeRepairedEqualsIntended(t *testing.T) {
	broken := []byte("{\n\t\"response\": {\n\t\t\"jeu\": {\n\t\t\t\"roms\": [],\n\t\t}\n\t}\n}")
	intended := []byte("{\n\t\"response\": {\n\t\t\"jeu\": {\n\t\t\t\"roms\": []\n\t\t}\n\t}\n}")

	fromBroken, _, err := decodeWithRepair(broken)
	require.NoError(t, err)
	fromIntended, _, err := decodeWithRepair(intended)
	require.NoError(t, err)

	assert.Equal(t, fromIntended, fromBroken)
}

func TestDecodeUnrepairableFails(t *testing.T) {
	// A different malformation (comma at another depth) is out of
	// scope for the targeted repairs.
	body := []byte(`{"response": {"jeu": {"id": 1,}}}`)

	record, passes, err := decodeWithRepair(body)
	assert.Error(t, err)
	assert.Nil(t, record)
	assert.Equal(t, 2, passes)
}

func TestDecodeGarbageFails(t *testing.T) {
	_, _, err := decodeWithRepair([]byte("<html>quota page</html>"))
	assert.Error(t, err)
}
