package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestDoc = `years:
  - year: 2025
    source: https://www.irs.gov/instructions/i1040gi
    table_rows: 2062
    worksheet_rows: 20
`

func TestParseManifest_Valid(t *testing.T) {
	m, err := parseManifest([]byte(manifestDoc))
	require.NoError(t, err)
	require.Len(t, m.Years, 1)
	assert.Equal(t, 2025, m.Years[0].Year)
	assert.Equal(t, 2062, m.Years[0].TableRows)
	assert.Equal(t, 20, m.Years[0].WorksheetRows)
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "years: ["},
		{"no years", "years: []"},
		{"implausible year", "years:\n  - year: 1492\n    source: s\n    table_rows: 1\n    worksheet_rows: 1"},
		{"duplicate year", "years:\n  - year: 2025\n    source: s\n    table_rows: 1\n    worksheet_rows: 1\n  - year: 2025\n    source: s\n    table_rows: 1\n    worksheet_rows: 1"},
		{"empty table", "years:\n  - year: 2025\n    source: s\n    table_rows: 0\n    worksheet_rows: 1"},
		{"empty worksheet", "years:\n  - year: 2025\n    source: s\n    table_rows: 1\n    worksheet_rows: 0"},
		{"missing source", "years:\n  - year: 2025\n    table_rows: 1\n    worksheet_rows: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseManifest([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
