package dataset

import "fmt"

// validateSchedule enforces the structural invariants of one (year,
// status) schedule. Together the checks guarantee that bands and
// brackets tile [0, infinity) exactly once and that amounts only grow
// with income, which catches transcription and scraper errors that
// would otherwise surface as silently wrong tax values.
func validateSchedule(year int, status Status, s *Schedule) error {
	if err := validateBands(s.Bands); err != nil {
		return fmt.Errorf("year %d %s table: %w", year, status, err)
	}
	if err := validateBrackets(s.Brackets); err != nil {
		return fmt.Errorf("year %d %s worksheet: %w", year, status, err)
	}

	// The two methods must agree in direction across the seam: the
	// worksheet value at exactly $100,000 may not undercut the table's
	// top band.
	seamTax, ok := s.WorksheetTax(TableCeiling)
	if !ok {
		return fmt.Errorf("year %d %s worksheet: no bracket covers %d", year, status, TableCeiling)
	}
	if top := s.Bands[len(s.Bands)-1].Tax; seamTax < top {
		return fmt.Errorf("year %d %s: worksheet tax %d at %d undercuts top table band %d",
			year, status, seamTax, TableCeiling, top)
	}
	return nil
}

// validateBands checks that table bands are sorted, contiguous from 0
// to TableCeiling, and carry non-decreasing tax amounts.
func validateBands(bands []TableBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("no bands")
	}
	if bands[0].Floor != 0 {
		return fmt.Errorf("first band starts at %d, want 0", bands[0].Floor)
	}
	for i, b := range bands {
		if b.Ceiling <= b.Floor {
			return fmt.Errorf("band %d: empty range [%d, %d)", i, b.Floor, b.Ceiling)
		}
		if b.Tax < 0 {
			return fmt.Errorf("band %d: negative tax %d", i, b.Tax)
		}
		if i > 0 {
			if prev := bands[i-1]; b.Floor != prev.Ceiling {
				return fmt.Errorf("band %d: starts at %d, previous ends at %d (gap or overlap)",
					i, b.Floor, prev.Ceiling)
			} else if b.Tax < prev.Tax {
				return fmt.Errorf("band %d: tax %d decreases from %d", i, b.Tax, prev.Tax)
			}
		}
	}
	if last := bands[len(bands)-1]; last.Ceiling != TableCeiling {
		return fmt.Errorf("last band ends at %d, want %d", last.Ceiling, TableCeiling)
	}
	return nil
}

// validateBrackets checks that worksheet brackets are sorted, contiguous
// from TableCeiling, end in exactly one unbounded bracket, and carry
// rates that are sane percentages growing with income.
//
// Adjacent brackets must also agree at their shared boundary: the
// worksheet's rate/subtraction pairs encode one continuous progressive
// tax curve, so rate2 x b - sub2 == rate1 x b - sub1 at every boundary
// b. In fixed-point terms, (rate2-rate1) x b x 100 == (sub2-sub1) x 10000
// cents-basis products, i.e. the check below. A transcription error in
// any one number breaks the identity.
func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("no brackets")
	}
	if brackets[0].Floor != TableCeiling {
		return fmt.Errorf("first bracket starts at %d, want %d", brackets[0].Floor, TableCeiling)
	}
	for i, b := range brackets {
		unbounded := b.Ceiling == 0
		if unbounded != (i == len(brackets)-1) {
			return fmt.Errorf("bracket %d: unbounded bracket must be last and only last", i)
		}
		if !unbounded && b.Ceiling <= b.Floor {
			return fmt.Errorf("bracket %d: empty range [%d, %d]", i, b.Floor, b.Ceiling)
		}
		if b.RateBasisPoints <= 0 || b.RateBasisPoints >= 10_000 {
			return fmt.Errorf("bracket %d: rate %d basis points outside (0%%, 100%%)", i, b.RateBasisPoints)
		}
		if i == 0 {
			continue
		}

		prev := brackets[i-1]
		if b.Floor != prev.Ceiling {
			return fmt.Errorf("bracket %d: starts at %d, previous ends at %d (gap or overlap)",
				i, b.Floor, prev.Ceiling)
		}
		if b.RateBasisPoints < prev.RateBasisPoints {
			return fmt.Errorf("bracket %d: rate %d decreases from %d",
				i, b.RateBasisPoints, prev.RateBasisPoints)
		}
		if (b.RateBasisPoints-prev.RateBasisPoints)*b.Floor != (b.SubtractionCents-prev.SubtractionCents)*100 {
			return fmt.Errorf("bracket %d: discontinuous with previous at income %d", i, b.Floor)
		}
	}
	return nil
}
