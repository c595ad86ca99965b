package storages

import (
	"github.com/pescuma/codesize/lib/model"
)

// History keeps the overall result of past comparisons so size trends can be
// followed across runs.
type History interface {
	WriteComparison(c *model.Comparison) error

	// ListHistory returns up to limit entries for library, newest first.
	ListHistory(library string, limit int) ([]*model.HistoryEntry, error)

	Close() error
}
