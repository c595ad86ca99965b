package compare

import (
	"fmt"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/codesize/lib/model"
)

// ErrZeroOldSize is returned when an object exists in both revisions but its
// old size is zero, so no relative change can be computed.
var ErrZeroOldSize = errors.New("old size is zero")

// Compare computes, for every object of the new revision, the change in total
// size relative to the old revision. Objects missing from the old revision are
// reported as new.
func Compare(oldSizes, newSizes *model.RevisionSizes) (*model.Comparison, error) {
	result := &model.Comparison{
		OldRevision: oldSizes.Revision,
		NewRevision: newSizes.Revision,
	}

	for _, newLib := range newSizes.Libraries() {
		oldLib, ok := oldSizes.Get(newLib.Name)
		if !ok {
			oldLib = model.NewLibrarySizes(newLib.Name)
		}

		lc, err := compareLibrary(oldLib, newLib)
		if err != nil {
			return nil, err
		}

		result.Libraries = append(result.Libraries, lc)
	}

	return result, nil
}

func compareLibrary(oldLib, newLib *model.LibrarySizes) (*model.LibraryComparison, error) {
	result := &model.LibraryComparison{
		Name: newLib.Name,
	}

	for _, name := range newLib.Names() {
		newSize, _ := newLib.Get(name)

		row := &model.ComparisonRow{
			Name:    name,
			NewSize: newSize.Total,
		}

		oldSize, ok := oldLib.Get(name)
		if ok {
			if oldSize.Total == 0 {
				return nil, errors.Wrapf(ErrZeroOldSize, "%v: %v", newLib.Name, name)
			}

			row.HasOld = true
			row.OldSize = oldSize.Total
			row.Change = newSize.Total - oldSize.Total
			row.ChangeRatio = float64(row.Change) / float64(oldSize.Total)

			if name == model.TotalsName {
				result.HasTotals = true
				result.TotalsRatio = row.ChangeRatio
			}
		}

		result.Rows = append(result.Rows, row)
	}

	newNames := set.From(newLib.Names())
	result.Removed = lo.Filter(oldLib.Names(), func(name string, _ int) bool {
		return !newNames.Contains(name)
	})

	return result, nil
}

// FormatPercent formats a ratio as a percentage with two decimals.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
