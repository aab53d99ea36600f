package dataset

import (
	"embed"
	"fmt"
	"sync"
)

// The CSVs and manifest are produced by the offline scraper and
// versioned with the code; see data/manifest.yaml for provenance.
//
//go:embed data
var dataFS embed.FS

var (
	loadOnce sync.Once
	loaded   *Dataset
	loadErr  error
)

// Load parses and validates the embedded datasets, building the
// immutable (year, status) -> Schedule mapping.
//
// The build runs exactly once per process, guarded by sync.Once;
// concurrent first callers block until it completes and every caller
// observes the same fully constructed Dataset (or the same sticky
// error). The result is never mutated after Load returns.
func Load() (*Dataset, error) {
	loadOnce.Do(func() {
		loaded, loadErr = build()
	})
	return loaded, loadErr
}

// build assembles the dataset from the embedded files. Any failure
// abandons the whole build; the library cannot serve computations from
// partial or unvalidated reference data.
func build() (*Dataset, error) {
	raw, err := dataFS.ReadFile("data/manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := parseManifest(raw)
	if err != nil {
		return nil, err
	}

	d := &Dataset{years: make(map[int]map[Status]*Schedule, len(m.Years))}
	for _, my := range m.Years {
		byStatus, err := buildYear(my)
		if err != nil {
			return nil, err
		}
		d.years[my.Year] = byStatus
	}
	return d, nil
}

// buildYear parses, cross-checks, and validates one year's data files.
func buildYear(my manifestYear) (map[Status]*Schedule, error) {
	tableName := fmt.Sprintf("data/%d/tax_table.csv", my.Year)
	raw, err := dataFS.ReadFile(tableName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tableName, err)
	}
	bands, tableRows, err := parseTable(tableName, raw)
	if err != nil {
		return nil, err
	}
	if tableRows != my.TableRows {
		return nil, fmt.Errorf("%s: %d rows, manifest declares %d", tableName, tableRows, my.TableRows)
	}

	worksheetName := fmt.Sprintf("data/%d/tax_computation_worksheet.csv", my.Year)
	raw, err = dataFS.ReadFile(worksheetName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", worksheetName, err)
	}
	brackets, worksheetRows, err := parseWorksheet(worksheetName, raw)
	if err != nil {
		return nil, err
	}
	if worksheetRows != my.WorksheetRows {
		return nil, fmt.Errorf("%s: %d rows, manifest declares %d", worksheetName, worksheetRows, my.WorksheetRows)
	}

	byStatus := make(map[Status]*Schedule, len(Statuses))
	for _, status := range Statuses {
		s := &Schedule{Bands: bands[status], Brackets: brackets[status]}
		if err := validateSchedule(my.Year, status, s); err != nil {
			return nil, err
		}
		byStatus[status] = s
	}
	return byStatus, nil
}
