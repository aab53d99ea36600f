package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableDoc = `income_min,income_max,single,married_filing_jointly,married_filing_separately,head_of_household
0,5,0,0,0,0
5,15,1,1,1,1
15,25,2,2,2,2
`

const worksheetDoc = `filing_status,income_min,income_max,rate,subtraction_amount
single,100000,103350,0.22,5086.00
single,103350,,0.24,7153.00
head_of_household,100000,,0.22,6825.00
`

func TestParseTable_Valid(t *testing.T) {
	bands, rows, err := parseTable("tax_table.csv", []byte(tableDoc))
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	for _, status := range Statuses {
		require.Len(t, bands[status], 3, "status %s", status)
	}
	assert.Equal(t, TableBand{Floor: 5, Ceiling: 15, Tax: 1}, bands[StatusSingle][1])
}

func TestParseTable_BadHeader(t *testing.T) {
	doc := "income_min,income_max,single,mfj,mfs,hoh\n0,5,0,0,0,0\n"
	_, _, err := parseTable("tax_table.csv", []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestParseTable_WrongFieldCount(t *testing.T) {
	doc := "income_min,income_max,single,married_filing_jointly,married_filing_separately,head_of_household\n0,5,0\n"
	_, _, err := parseTable("tax_table.csv", []byte(doc))
	assert.Error(t, err)
}

func TestParseTable_MalformedAmount(t *testing.T) {
	doc := "income_min,income_max,single,married_filing_jointly,married_filing_separately,head_of_household\n0,5,zero,0,0,0\n"
	_, _, err := parseTable("tax_table.csv", []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestParseTable_NegativeAmount(t *testing.T) {
	doc := "income_min,income_max,single,married_filing_jointly,married_filing_separately,head_of_household\n0,5,-1,0,0,0\n"
	_, _, err := parseTable("tax_table.csv", []byte(doc))
	assert.Error(t, err)
}

func TestParseWorksheet_Valid(t *testing.T) {
	brackets, rows, err := parseWorksheet("worksheet.csv", []byte(worksheetDoc))
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	require.Len(t, brackets[StatusSingle], 2)
	assert.Equal(t, Bracket{
		Floor:            100_000,
		Ceiling:          103_350,
		RateBasisPoints:  2_200,
		SubtractionCents: 508_600,
	}, brackets[StatusSingle][0])

	// Empty income_max marks the unbounded top bracket.
	assert.Equal(t, int64(0), brackets[StatusSingle][1].Ceiling)

	require.Len(t, brackets[StatusHeadOfHousehold], 1)
	assert.Empty(t, brackets[StatusMarriedFilingJointly])
}

func TestParseWorksheet_UnknownStatus(t *testing.T) {
	doc := "filing_status,income_min,income_max,rate,subtraction_amount\nwidowed,100000,,0.22,5086.00\n"
	_, _, err := parseWorksheet("worksheet.csv", []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filing status")
}

func TestParseWorksheet_MalformedRate(t *testing.T) {
	doc := "filing_status,income_min,income_max,rate,subtraction_amount\nsingle,100000,,22%,5086.00\n"
	_, _, err := parseWorksheet("worksheet.csv", []byte(doc))
	assert.Error(t, err)
}

func TestParseFixed(t *testing.T) {
	tests := []struct {
		in    string
		scale int
		want  int64
	}{
		{"0.22", 4, 2_200},
		{"0.10", 4, 1_000},
		{"0.37", 4, 3_700},
		{"5086.00", 2, 508_600},
		{"6957.5", 2, 695_750},
		{"42979.75", 2, 4_297_975},
		{"0", 2, 0},
		{"12", 2, 1_200},
	}
	for _, tt := range tests {
		got, err := parseFixed(tt.in, tt.scale)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseFixed_Invalid(t *testing.T) {
	for _, in := range []string{"", ".", ".5", "-1.00", "+2", "1.2.3", "0.12345", "abc"} {
		_, err := parseFixed(in, 4)
		assert.Error(t, err, "input %q must not parse", in)
	}
}
