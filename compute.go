package ustax

import "github.com/taxdata/ustax/internal/dataset"

// ComputeTax computes federal income tax in whole dollars for the given
// tax year, filing status, and taxable income (whole dollars, typically
// Form 1040 line 15).
//
// Method selection follows the Form 1040 instructions:
//
//   - income < $100,000: Tax Table lookup. The matching band's
//     pre-computed amount is returned as-is.
//   - income >= $100,000: Tax Computation Worksheet. Returns
//     income x rate - subtraction, rounded to the nearest dollar.
//
// QualifyingSurvivingSpouse resolves to the MarriedFilingJointly schedule.
//
// All failures are returned as *Error values; see the ErrorCode constants
// and the Is* predicates. ComputeTax never panics and has no side effects
// beyond one-time dataset initialization on first call.
func ComputeTax(year TaxYear, status FilingStatus, taxableIncome int64) (int64, error) {
	if !status.valid() {
		return 0, newInvalidFilingStatusError(status)
	}
	if taxableIncome < 0 {
		return 0, newNegativeIncomeError(taxableIncome)
	}

	ds, err := dataset.Load()
	if err != nil {
		return 0, newDataIntegrityError("embedded dataset failed to load", err)
	}
	sched, ok := ds.Schedule(int(year), status.datasetKey())
	if !ok {
		return 0, newUnsupportedYearError(year, status)
	}

	if taxableIncome == 0 {
		return 0, nil
	}

	if taxableIncome < dataset.TableCeiling {
		tax, ok := sched.TableTax(taxableIncome)
		if !ok {
			return 0, newIncomeOutOfRangeError(year, status, taxableIncome)
		}
		return tax, nil
	}

	tax, ok := sched.WorksheetTax(taxableIncome)
	if !ok {
		return 0, newIncomeOutOfRangeError(year, status, taxableIncome)
	}
	if tax < 0 {
		// A negative result means a corrupted subtraction amount.
		// Clamping would mask it; fail loudly instead.
		return 0, newDataIntegrityError(
			usd.Sprintf("worksheet produced negative tax %d for %s %s income %s",
				tax, year, status, FormatUSD(taxableIncome)), nil)
	}
	return tax, nil
}
