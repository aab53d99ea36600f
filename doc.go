// Package ustax computes U.S. federal income tax from the official IRS
// tax tables and tax computation worksheets.
//
// The IRS publishes two methods for turning taxable income (Form 1040,
// line 15) into tax owed:
//
//   - Tax Table: for taxable incomes under $100,000, a lookup table with
//     pre-computed tax amounts for each income band and filing status.
//   - Tax Computation Worksheet: for taxable incomes of $100,000 or more,
//     the formula tax = income x rate - subtraction, where rate and
//     subtraction depend on the income bracket and filing status.
//
// ComputeTax selects the correct method automatically:
//
//	tax, err := ustax.ComputeTax(ustax.Y2025, ustax.Single, 75_000)
//	// tax == 11_420
//
// The per-year datasets are scraped from the IRS Form 1040 instructions,
// embedded into the binary, and validated on first use. ComputeTax is a
// pure function: no I/O, no mutation, safe for unlimited concurrent callers.
//
// CRITICAL PATTERNS:
//
// No floats anywhere. Worksheet rates are basis points and subtraction
// amounts are cents, so every computation is exact int64 arithmetic and
// results are bit-for-bit reproducible across platforms.
//
// Dataset immutability. The embedded data is parsed exactly once (guarded
// by sync.Once) and never mutated afterwards; readers share it lock-free.
package ustax
