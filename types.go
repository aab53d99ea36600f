package ustax

import (
	"fmt"
	"strconv"

	"github.com/taxdata/ustax/internal/dataset"
)

// TaxYear identifies a tax year with an embedded IRS dataset.
// The numeric value is the calendar year, so TaxYear values format
// naturally and compare in chronological order.
//
// New years are added as the IRS publishes updated Form 1040
// instructions: one new constant here, one new data directory under
// internal/dataset/data, no logic changes.
type TaxYear int

const (
	// Y2023 is tax year 2023 (filed in 2024).
	Y2023 TaxYear = 2023

	// Y2024 is tax year 2024 (filed in 2025).
	Y2024 TaxYear = 2024

	// Y2025 is tax year 2025 (filed in 2026).
	Y2025 TaxYear = 2025
)

// String returns the calendar year, e.g. "2025".
func (y TaxYear) String() string {
	return strconv.Itoa(int(y))
}

// FilingStatus is the taxpayer category from Form 1040. It selects which
// tax table column and worksheet schedule apply.
type FilingStatus int

const (
	// Single is an unmarried individual.
	Single FilingStatus = iota

	// MarriedFilingJointly is a married couple filing one combined return.
	MarriedFilingJointly

	// MarriedFilingSeparately is a married individual filing alone.
	MarriedFilingSeparately

	// HeadOfHousehold is an unmarried individual with qualifying dependents.
	HeadOfHousehold

	// QualifyingSurvivingSpouse is a widowed taxpayer with a dependent
	// child. The IRS applies the MarriedFilingJointly schedule to this
	// status; lookups treat the two as interchangeable.
	QualifyingSurvivingSpouse
)

// String returns the IRS display name, e.g. "Married Filing Jointly".
func (s FilingStatus) String() string {
	switch s {
	case Single:
		return "Single"
	case MarriedFilingJointly:
		return "Married Filing Jointly"
	case MarriedFilingSeparately:
		return "Married Filing Separately"
	case HeadOfHousehold:
		return "Head of Household"
	case QualifyingSurvivingSpouse:
		return "Qualifying Surviving Spouse"
	default:
		return fmt.Sprintf("FilingStatus(%d)", int(s))
	}
}

// ParseFilingStatus converts a dataset key ("single",
// "married_filing_jointly", ...) to a FilingStatus. The keys match the
// filing_status column of the worksheet CSVs produced by the scraper.
func ParseFilingStatus(key string) (FilingStatus, error) {
	switch dataset.Status(key) {
	case dataset.StatusSingle:
		return Single, nil
	case dataset.StatusMarriedFilingJointly:
		return MarriedFilingJointly, nil
	case dataset.StatusMarriedFilingSeparately:
		return MarriedFilingSeparately, nil
	case dataset.StatusHeadOfHousehold:
		return HeadOfHousehold, nil
	case "qualifying_surviving_spouse":
		return QualifyingSurvivingSpouse, nil
	}
	return 0, fmt.Errorf("unknown filing status %q", key)
}

// valid reports whether s is one of the declared constants. FilingStatus
// is an open int type, so casts from arbitrary integers must be guarded.
func (s FilingStatus) valid() bool {
	return s >= Single && s <= QualifyingSurvivingSpouse
}

// datasetKey maps s to the key used by the embedded dataset.
// QualifyingSurvivingSpouse shares the MarriedFilingJointly data.
func (s FilingStatus) datasetKey() dataset.Status {
	switch s {
	case Single:
		return dataset.StatusSingle
	case MarriedFilingJointly, QualifyingSurvivingSpouse:
		return dataset.StatusMarriedFilingJointly
	case MarriedFilingSeparately:
		return dataset.StatusMarriedFilingSeparately
	case HeadOfHousehold:
		return dataset.StatusHeadOfHousehold
	default:
		return ""
	}
}
