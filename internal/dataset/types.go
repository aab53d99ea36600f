package dataset

import "sort"

// TableCeiling is the exclusive upper bound of the Tax Table's income
// domain. Incomes at or above it use the worksheet.
const TableCeiling = 100_000

// Status is a filing-status key as it appears in the scraped CSV files.
type Status string

const (
	StatusSingle                  Status = "single"
	StatusMarriedFilingJointly    Status = "married_filing_jointly"
	StatusMarriedFilingSeparately Status = "married_filing_separately"
	StatusHeadOfHousehold         Status = "head_of_household"
)

// Statuses lists the canonical status keys in CSV column order.
// Qualifying surviving spouse is not a dataset key; callers resolve it
// to StatusMarriedFilingJointly before lookup.
var Statuses = []Status{
	StatusSingle,
	StatusMarriedFilingJointly,
	StatusMarriedFilingSeparately,
	StatusHeadOfHousehold,
}

// TableBand is one Tax Table row for one filing status: incomes in
// [Floor, Ceiling) owe exactly Tax dollars. The IRS computes Tax as the
// progressive tax at the band midpoint rounded to the nearest dollar.
type TableBand struct {
	Floor   int64
	Ceiling int64
	Tax     int64
}

// Bracket is one Tax Computation Worksheet row for one filing status.
// Ceiling == 0 marks the unbounded top bracket ("and over").
//
// Rates and subtraction amounts are fixed-point: RateBasisPoints is the
// marginal rate in 1/100ths of a percent (22% == 2200) and
// SubtractionCents is the subtraction amount in cents, preserving the
// fractional-dollar values the worksheet prints (e.g. $42,979.75).
type Bracket struct {
	Floor            int64
	Ceiling          int64
	RateBasisPoints  int64
	SubtractionCents int64
}

// Schedule holds the complete data for one (year, status) pair: table
// bands covering [0, TableCeiling) and worksheet brackets covering
// [TableCeiling, infinity).
type Schedule struct {
	Bands    []TableBand
	Brackets []Bracket
}

// TableTax looks up the pre-computed tax for an income below
// TableCeiling. Bands are sorted and contiguous, so a binary search on
// the ceilings finds the covering band in O(log n). Returns false if no
// band covers the income.
func (s *Schedule) TableTax(income int64) (int64, bool) {
	i := sort.Search(len(s.Bands), func(i int) bool {
		return income < s.Bands[i].Ceiling
	})
	if i == len(s.Bands) || income < s.Bands[i].Floor {
		return 0, false
	}
	return s.Bands[i].Tax, true
}

// WorksheetTax computes income x rate - subtraction for the bracket
// covering the income, rounded half away from zero to whole dollars
// (the worksheet's "round to the nearest dollar"). Returns false if no
// bracket covers the income.
//
// The product of whole-dollar income and basis points is an exact value
// in 1/10,000ths of a dollar, so the arithmetic never leaves int64.
func (s *Schedule) WorksheetTax(income int64) (int64, bool) {
	for _, b := range s.Brackets {
		if income < b.Floor {
			continue
		}
		if b.Ceiling != 0 && income > b.Ceiling {
			continue
		}
		tenThousandths := income*b.RateBasisPoints - b.SubtractionCents*100
		return roundHalfAway(tenThousandths), true
	}
	return 0, false
}

// roundHalfAway converts 1/10,000ths of a dollar to whole dollars,
// rounding halves away from zero.
func roundHalfAway(tenThousandths int64) int64 {
	if tenThousandths < 0 {
		return -((-tenThousandths + 5_000) / 10_000)
	}
	return (tenThousandths + 5_000) / 10_000
}

// Dataset is the immutable (year, status) -> Schedule mapping assembled
// from the embedded files.
type Dataset struct {
	years map[int]map[Status]*Schedule
}

// Schedule returns the data for a year and canonical status key.
func (d *Dataset) Schedule(year int, status Status) (*Schedule, bool) {
	byStatus, ok := d.years[year]
	if !ok {
		return nil, false
	}
	s, ok := byStatus[status]
	return s, ok
}

// Years returns the supported tax years in ascending order.
func (d *Dataset) Years() []int {
	years := make([]int, 0, len(d.years))
	for y := range d.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
