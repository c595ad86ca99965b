package orm

import (
	"time"

	"github.com/pescuma/codesize/lib/model"
)

type sqlComparison struct {
	ID          uint   `gorm:"primaryKey"`
	OldRevision string `gorm:"index"`
	NewRevision string
	Library     string `gorm:"index"`
	OldSize     int64
	NewSize     int64
	Change      int64
	ChangeRatio float64

	CreatedAt time.Time
}

func (sqlComparison) TableName() string {
	return "comparisons"
}

func newSqlComparison(c *model.Comparison, lib *model.LibraryComparison, totals *model.ComparisonRow) *sqlComparison {
	return &sqlComparison{
		OldRevision: c.OldRevision,
		NewRevision: c.NewRevision,
		Library:     lib.Name,
		OldSize:     totals.OldSize,
		NewSize:     totals.NewSize,
		Change:      totals.Change,
		ChangeRatio: totals.ChangeRatio,
	}
}

func (s *sqlComparison) toModel() *model.HistoryEntry {
	return &model.HistoryEntry{
		OldRevision: s.OldRevision,
		NewRevision: s.NewRevision,
		Library:     s.Library,
		OldSize:     s.OldSize,
		NewSize:     s.NewSize,
		Change:      s.Change,
		ChangeRatio: s.ChangeRatio,
		CreatedAt:   s.CreatedAt,
	}
}
