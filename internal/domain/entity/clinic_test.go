package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClinic_Name(t *testing.T) {
	assert.Equal(t, "Sparsh Polyclinic", PlainClinic("Sparsh Polyclinic").Name())
	assert.Equal(t, "Niramaya", StructuredClinic("Niramaya", "Wanowrie").Name())
	assert.Equal(t, UnknownClinicName, StructuredClinic("", "Wanowrie").Name())
	assert.Equal(t, "", PlainClinic("").Name())
}

func TestClinic_JSONKeepsShape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    ClinicKind
		display string
		address string
	}{
		{name: "plain string", input: `"Apex Hospital"`, kind: ClinicPlain, display: "Apex Hospital"},
		{name: "structured object", input: `{"name":"Apex Hospital","address":"Kondhawa"}`, kind: ClinicStructured, display: "Apex Hospital", address: "Kondhawa"},
		{name: "structured without name", input: `{"address":"Kondhawa"}`, kind: ClinicStructured, display: UnknownClinicName, address: "Kondhawa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clinic
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.display, c.Name())
			assert.Equal(t, tt.address, c.Address())

			out, err := json.Marshal(c)
			require.NoError(t, err)

			var again Clinic
			require.NoError(t, json.Unmarshal(out, &again))
			assert.Equal(t, c, again)
		})
	}
}

func TestClinic_UnmarshalJSONNull(t *testing.T) {
	c := PlainClinic("stale")
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Equal(t, Clinic{}, c)
}

func TestClinic_UnmarshalJSONRejectsOtherShapes(t *testing.T) {
	var c Clinic
	assert.Error(t, json.Unmarshal([]byte(`42`), &c))
}

func TestClinic_UnmarshalYAML(t *testing.T) {
	var holder struct {
		Plain      Clinic `yaml:"plain"`
		Structured Clinic `yaml:"structured"`
	}
	doc := `
plain: Dr. Bajaj Wellness Clinic
structured:
  name: Niramaya Clinic
  address: Wanowrie
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &holder))

	assert.Equal(t, ClinicPlain, holder.Plain.Kind())
	assert.Equal(t, "Dr. Bajaj Wellness Clinic", holder.Plain.Name())
	assert.Equal(t, ClinicStructured, holder.Structured.Kind())
	assert.Equal(t, "Niramaya Clinic", holder.Structured.Name())
	assert.Equal(t, "Wanowrie", holder.Structured.Address())
}

func TestClinic_UnmarshalYAMLRejectsNonStrings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "sequence", doc: "clinic: [a, b]"},
		{name: "integer", doc: "clinic: 42"},
		{name: "boolean", doc: "clinic: true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var holder struct {
				Clinic Clinic `yaml:"clinic"`
			}
			assert.Error(t, yaml.Unmarshal([]byte(tt.doc), &holder))

			var fromJSON Clinic
			assert.Error(t, json.Unmarshal([]byte(tt.doc[len("clinic: "):]), &fromJSON))
		})
	}
}

func TestClinic_UnmarshalYAMLQuotedAndNull(t *testing.T) {
	var holder struct {
		Quoted Clinic `yaml:"quoted"`
		Empty  Clinic `yaml:"empty"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("quoted: \"42\"\nempty: ~\n"), &holder))

	assert.Equal(t, PlainClinic("42"), holder.Quoted)
	assert.Equal(t, Clinic{}, holder.Empty)
}

func TestClinic_ValueAndScan(t *testing.T) {
	original := StructuredClinic("Niramaya Clinic", "Wanowrie")

	v, err := original.Value()
	require.NoError(t, err)

	var scanned Clinic
	require.NoError(t, scanned.Scan([]byte(v.(string))))
	assert.Equal(t, original, scanned)

	require.NoError(t, scanned.Scan(`"Sparsh Polyclinic"`))
	assert.Equal(t, PlainClinic("Sparsh Polyclinic"), scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, Clinic{}, scanned)

	assert.Error(t, scanned.Scan(12))
}
