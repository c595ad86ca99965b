package workspace

import (
	"fmt"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/codesize/lib/compare"
	"github.com/pescuma/codesize/lib/model"
)

const historyEntries = 5

func (w *Workspace) printSummary(c *model.Comparison) {
	plural := pluralize.NewClient()

	for _, lib := range c.Libraries {
		totals, ok := lib.Totals()
		switch {
		case !ok:
			w.console.Printf("%v: no totals reported\n", lib.Name)
		case !totals.HasOld:
			w.console.Printf("%v: %v (new)\n", lib.Name, humanize.IBytes(uint64(totals.NewSize)))
		default:
			w.console.Printf("%v: %v -> %v (%v, %v)\n", lib.Name,
				humanize.IBytes(uint64(totals.OldSize)), humanize.IBytes(uint64(totals.NewSize)),
				formatChange(totals.Change), compare.FormatPercent(totals.ChangeRatio))
		}

		if len(lib.Removed) > 0 {
			w.console.Printf("%v: %v removed: %v\n", lib.Name,
				plural.Pluralize("object", len(lib.Removed), true), lib.Removed)
		}
	}
}

func formatChange(change int64) string {
	switch {
	case change > 0:
		return "+" + humanize.IBytes(uint64(change))
	case change < 0:
		return "-" + humanize.IBytes(uint64(-change))
	default:
		return "no change"
	}
}

func (w *Workspace) printHistory(c *model.Comparison) error {
	for _, lib := range c.Libraries {
		entries, err := w.history.ListHistory(lib.Name, historyEntries)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			continue
		}

		w.console.Printf("Recent history of %v:\n", lib.Name)
		w.console.PushPrefix("  ")

		for _, e := range entries {
			w.console.Printf("%v %v..%v %v\n", e.CreatedAt.Format("2006-01-02 15:04"),
				shortRevision(e.OldRevision), shortRevision(e.NewRevision),
				fmt.Sprintf("%v (%v)", compare.FormatPercent(e.ChangeRatio), formatChange(e.Change)))
		}

		w.console.PopPrefix()
	}

	return nil
}

func shortRevision(revision string) string {
	return truncate.Truncate(revision, 10, "", truncate.PositionEnd)
}
