package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var tableHeader = []string{
	"income_min", "income_max",
	"single", "married_filing_jointly", "married_filing_separately", "head_of_household",
}

var worksheetHeader = []string{
	"filing_status", "income_min", "income_max", "rate", "subtraction_amount",
}

// parseTable parses a tax_table.csv blob into per-status band slices.
// Each CSV row carries the tax for all four statuses, so one row fans
// out into one band per status. Any malformed record aborts the parse.
func parseTable(name string, data []byte) (map[Status][]TableBand, int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(tableHeader)

	if err := readHeader(r, name, tableHeader); err != nil {
		return nil, 0, err
	}

	bands := make(map[Status][]TableBand, len(Statuses))
	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", name, err)
		}
		rows++

		floor, err := parseDollars(rec[0])
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: income_min: %w", name, rows, err)
		}
		ceiling, err := parseDollars(rec[1])
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: income_max: %w", name, rows, err)
		}
		for i, status := range Statuses {
			tax, err := parseDollars(rec[2+i])
			if err != nil {
				return nil, 0, fmt.Errorf("%s row %d: %s: %w", name, rows, status, err)
			}
			bands[status] = append(bands[status], TableBand{
				Floor:   floor,
				Ceiling: ceiling,
				Tax:     tax,
			})
		}
	}
	return bands, rows, nil
}

// parseWorksheet parses a tax_computation_worksheet.csv blob into
// per-status bracket slices. An empty income_max marks the unbounded
// top bracket. Any malformed record aborts the parse.
func parseWorksheet(name string, data []byte) (map[Status][]Bracket, int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(worksheetHeader)

	if err := readHeader(r, name, worksheetHeader); err != nil {
		return nil, 0, err
	}

	brackets := make(map[Status][]Bracket, len(Statuses))
	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", name, err)
		}
		rows++

		status := Status(rec[0])
		if !knownStatus(status) {
			return nil, 0, fmt.Errorf("%s row %d: unknown filing status %q", name, rows, rec[0])
		}
		floor, err := parseDollars(rec[1])
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: income_min: %w", name, rows, err)
		}
		var ceiling int64
		if rec[2] != "" {
			ceiling, err = parseDollars(rec[2])
			if err != nil {
				return nil, 0, fmt.Errorf("%s row %d: income_max: %w", name, rows, err)
			}
		}
		rate, err := parseFixed(rec[3], 4) // basis points
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: rate: %w", name, rows, err)
		}
		subtraction, err := parseFixed(rec[4], 2) // cents
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: subtraction_amount: %w", name, rows, err)
		}
		brackets[status] = append(brackets[status], Bracket{
			Floor:            floor,
			Ceiling:          ceiling,
			RateBasisPoints:  rate,
			SubtractionCents: subtraction,
		})
	}
	return brackets, rows, nil
}

// readHeader consumes and verifies the CSV header row.
func readHeader(r *csv.Reader, name string, want []string) error {
	got, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: header: %w", name, err)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%s: header column %d is %q, want %q", name, i, got[i], want[i])
		}
	}
	return nil
}

// parseDollars parses a non-negative whole-dollar amount.
func parseDollars(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dollar amount %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative dollar amount %q", s)
	}
	return n, nil
}

// parseFixed parses a non-negative decimal string into fixed-point
// int64 with the given number of fractional digits, e.g.
// parseFixed("0.22", 4) == 2200 and parseFixed("42979.75", 2) == 4297975.
// More fractional digits than scale is an error, never silent truncation.
func parseFixed(s string, scale int) (int64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || strings.HasPrefix(whole, "-") || strings.HasPrefix(whole, "+") {
		return 0, fmt.Errorf("invalid decimal %q", s)
	}
	if len(frac) > scale {
		return 0, fmt.Errorf("decimal %q has more than %d fractional digits", s, scale)
	}

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q", s)
	}
	for i := 0; i < scale; i++ {
		n *= 10
	}
	if frac != "" {
		f, err := strconv.ParseInt(frac+strings.Repeat("0", scale-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid decimal %q", s)
		}
		n += f
	}
	return n, nil
}

func knownStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
