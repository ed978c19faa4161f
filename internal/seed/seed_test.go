package seed

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `
encounterTypes:
  - name: Admission
    description: Patient admitted to a ward
  - name: "  "
  - uuid: 0c7ae3a4-1b2f-4d1b-9a3c-9f6d2b0c1e55
    name: Discharge
    retired: true
  - description: no name at all
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.EncounterTypes, 4)

	assert.Equal(t, "Admission", f.EncounterTypes[0].NameValue())
	assert.Equal(t, "Patient admitted to a ward", f.EncounterTypes[0].Description)
	assert.Equal(t, "  ", f.EncounterTypes[1].NameValue())
	assert.Equal(t, "0c7ae3a4-1b2f-4d1b-9a3c-9f6d2b0c1e55", f.EncounterTypes[2].UUID)
	assert.True(t, f.EncounterTypes[2].Retired)
	assert.Nil(t, f.EncounterTypes[3].Name)
	assert.Equal(t, "", f.EncounterTypes[3].NameValue())
}

func TestParseEmptyDocument(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.EncounterTypes)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("encounterTypes:\n  - nmae: Admission\n"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, f.EncounterTypes, 4)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
