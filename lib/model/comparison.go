package model

type ComparisonRow struct {
	Name    string
	NewSize int64

	// HasOld is false for objects that only exist in the new revision. The
	// fields below are meaningless in that case.
	HasOld      bool
	OldSize     int64
	Change      int64
	ChangeRatio float64
}

type LibraryComparison struct {
	Name string
	Rows []*ComparisonRow

	// Removed lists objects present in the old revision but not in the new one.
	Removed []string

	HasTotals   bool
	TotalsRatio float64
}

func (l *LibraryComparison) Totals() (*ComparisonRow, bool) {
	for _, r := range l.Rows {
		if r.Name == TotalsName {
			return r, true
		}
	}
	return nil, false
}

type Comparison struct {
	OldRevision string
	NewRevision string
	Libraries   []*LibraryComparison
}

// ChangeRatios returns the overall change of each library that had a
// comparable (TOTALS) row.
func (c *Comparison) ChangeRatios() map[string]float64 {
	result := map[string]float64{}
	for _, l := range c.Libraries {
		if l.HasTotals {
			result[l.Name] = l.TotalsRatio
		}
	}
	return result
}
