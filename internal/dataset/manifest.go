package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// manifest describes the embedded data files: which years ship, where
// the data came from, and how many records each file must contain. The
// row counts are cross-checked against the parsed CSVs so a truncated
// or mis-copied embed fails loudly at load time.
type manifest struct {
	Years []manifestYear `yaml:"years"`
}

type manifestYear struct {
	// Year is the tax year the data directory covers.
	Year int `yaml:"year"`

	// Source is the IRS publication the scraper read.
	Source string `yaml:"source"`

	// TableRows is the expected record count of tax_table.csv.
	TableRows int `yaml:"table_rows"`

	// WorksheetRows is the expected record count of
	// tax_computation_worksheet.csv across all filing statuses.
	WorksheetRows int `yaml:"worksheet_rows"`
}

// parseManifest decodes and sanity-checks manifest.yaml.
func parseManifest(data []byte) (*manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest.yaml: %w", err)
	}
	if len(m.Years) == 0 {
		return nil, fmt.Errorf("manifest.yaml: no years declared")
	}

	seen := make(map[int]bool, len(m.Years))
	for _, y := range m.Years {
		if y.Year < 1913 { // the first year of the modern income tax
			return nil, fmt.Errorf("manifest.yaml: implausible tax year %d", y.Year)
		}
		if seen[y.Year] {
			return nil, fmt.Errorf("manifest.yaml: duplicate tax year %d", y.Year)
		}
		seen[y.Year] = true
		if y.TableRows <= 0 || y.WorksheetRows <= 0 {
			return nil, fmt.Errorf("manifest.yaml: year %d declares empty data", y.Year)
		}
		if y.Source == "" {
			return nil, fmt.Errorf("manifest.yaml: year %d has no source", y.Year)
		}
	}
	return &m, nil
}
