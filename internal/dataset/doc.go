// Package dataset owns the embedded IRS reference data.
//
// One directory per tax year holds two CSV files produced by the offline
// scraper: tax_table.csv (pre-computed tax per $50-ish income band, one
// column per filing status) and tax_computation_worksheet.csv (rate and
// subtraction amount per bracket, one row group per filing status). A
// manifest.yaml records provenance and expected row counts.
//
// Load parses everything exactly once, fails fast on any malformed
// record, and enforces the structural invariants of the IRS data: bands
// contiguous from $0 to $100,000, brackets contiguous from $100,000 with
// a single unbounded top bracket, amounts monotonically non-decreasing.
// A load failure is sticky; the data is trusted and versioned with the
// code, so an invalid dataset is a packaging defect, never a recoverable
// runtime condition.
//
// Key design constraints:
//   - NO float types anywhere - rates are basis points, amounts are
//     cents, all arithmetic is exact int64
//   - The dataset is immutable after Load; readers share it lock-free
package dataset
