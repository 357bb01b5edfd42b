package checklist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("RC.1")
	require.NoError(t, err)
	assert.Equal(t, ID{Prefix: "RC", Ordinal: 1}, id)
	assert.Equal(t, "RC.1", id.String())

	id, err = ParseID("Dn.12")
	require.NoError(t, err)
	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 12}, id)
}

func TestParseID_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"RC",
		"rc.1",     // lowercase prefix
		"5.6",      // citation, not an item
		"v1.2",     // version number
		"RC.1 ",    // trailing garbage
		"see RC.1", // embedded, not exact
		"Racing.1", // prefix too long
	} {
		_, err := ParseID(s)
		assert.Error(t, err, "ParseID(%q)", s)
	}
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, ID{}.IsZero())
	assert.False(t, ID{Prefix: "RC", Ordinal: 1}.IsZero())
}

func TestID_JSON(t *testing.T) {
	data, err := json.Marshal(ID{Prefix: "TE", Ordinal: 4})
	require.NoError(t, err)
	assert.Equal(t, `"TE.4"`, string(data))

	var id ID
	require.NoError(t, json.Unmarshal([]byte(`"Dn.3"`), &id))
	assert.Equal(t, ID{Prefix: "Dn", Ordinal: 3}, id)

	assert.Error(t, json.Unmarshal([]byte(`"not-an-id"`), &id))
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Is the field guarded?",
		cleanTitle(`**Is the field guarded?**`))
	assert.Equal(t, "Uses ConcurrentHashMap",
		cleanTitle("Uses `ConcurrentHashMap`"))
	assert.Equal(t, "Question?",
		cleanTitle(`<a name="q"></a> *Question?*`))
}
