package model

import "time"

// HistoryEntry is the overall change of one library in a past comparison.
type HistoryEntry struct {
	OldRevision string
	NewRevision string
	Library     string
	OldSize     int64
	NewSize     int64
	Change      int64
	ChangeRatio float64
	CreatedAt   time.Time
}
