package ustax

import (
	"errors"
	"fmt"
)

// Error represents a failed tax computation.
//
// Computation errors include:
//   - Unsupported year: no embedded dataset for the requested year
//   - Invalid filing status: value outside the declared constants
//   - Negative income: taxable income below zero
//   - Income out of range: no band or bracket covers the income
//   - Data integrity: the embedded dataset failed validation
//
// Error includes structured fields for diagnostics.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Year is the requested tax year, when relevant.
	Year TaxYear

	// Status is the requested filing status, when relevant.
	Status FilingStatus

	// Income is the requested taxable income, when relevant.
	Income int64

	// cause is the underlying error, for data integrity failures.
	cause error
}

// ErrorCode categorizes computation errors.
type ErrorCode string

const (
	// CodeUnsupportedYear indicates no dataset exists for the year.
	CodeUnsupportedYear ErrorCode = "UNSUPPORTED_YEAR"

	// CodeInvalidFilingStatus indicates a status outside the enum range.
	CodeInvalidFilingStatus ErrorCode = "INVALID_FILING_STATUS"

	// CodeNegativeIncome indicates taxable income below zero.
	CodeNegativeIncome ErrorCode = "NEGATIVE_INCOME"

	// CodeIncomeOutOfRange indicates no band or bracket covers the income.
	CodeIncomeOutOfRange ErrorCode = "INCOME_OUT_OF_RANGE"

	// CodeDataIntegrity indicates the embedded dataset is malformed or
	// internally inconsistent. Unreachable with correctly shipped data;
	// reaching it means a packaging defect, not a caller mistake.
	CodeDataIntegrity ErrorCode = "DATA_INTEGRITY"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == CodeUnsupportedYear || e.Code == CodeIncomeOutOfRange {
		return fmt.Sprintf("%s: %s (year=%s, status=%s)", e.Code, e.Message, e.Year, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for data integrity errors, nil otherwise.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsUnsupportedYear returns true if the error is an unsupported-year error.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedYear(err error) bool {
	return hasCode(err, CodeUnsupportedYear)
}

// IsInvalidFilingStatus returns true if the error is an invalid-status error.
func IsInvalidFilingStatus(err error) bool {
	return hasCode(err, CodeInvalidFilingStatus)
}

// IsNegativeIncome returns true if the error is a negative-income error.
func IsNegativeIncome(err error) bool {
	return hasCode(err, CodeNegativeIncome)
}

// IsIncomeOutOfRange returns true if the error is an income-out-of-range error.
func IsIncomeOutOfRange(err error) bool {
	return hasCode(err, CodeIncomeOutOfRange)
}

// IsDataIntegrity returns true if the error is a data integrity error.
func IsDataIntegrity(err error) bool {
	return hasCode(err, CodeDataIntegrity)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newUnsupportedYearError(year TaxYear, status FilingStatus) *Error {
	return &Error{
		Code:    CodeUnsupportedYear,
		Message: fmt.Sprintf("no dataset for tax year %s", year),
		Year:    year,
		Status:  status,
	}
}

func newInvalidFilingStatusError(status FilingStatus) *Error {
	return &Error{
		Code:    CodeInvalidFilingStatus,
		Message: fmt.Sprintf("invalid filing status %s", status),
		Status:  status,
	}
}

func newNegativeIncomeError(income int64) *Error {
	return &Error{
		Code:    CodeNegativeIncome,
		Message: fmt.Sprintf("taxable income %s is negative", FormatUSD(income)),
		Income:  income,
	}
}

func newIncomeOutOfRangeError(year TaxYear, status FilingStatus, income int64) *Error {
	return &Error{
		Code:    CodeIncomeOutOfRange,
		Message: fmt.Sprintf("no bracket covers taxable income %s", FormatUSD(income)),
		Year:    year,
		Status:  status,
		Income:  income,
	}
}

func newDataIntegrityError(msg string, cause error) *Error {
	return &Error{
		Code:    CodeDataIntegrity,
		Message: msg,
		cause:   cause,
	}
}
