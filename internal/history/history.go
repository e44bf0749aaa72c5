// Package history persists analysis results and serves paginated,
// time-ordered retrieval. Records are returned most recent first, with ties
// broken by resume_id descending as a surrogate for insertion order.
package history

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Store is the persistence contract for analysis results. Append is
// at-least-once durable: once it returns nil the record is visible to
// subsequent Query calls. Query never fails for out-of-range pages; it
// returns an empty page with the correct total count instead.
type Store interface {
	Append(ctx context.Context, result *types.AnalysisResult) error
	Query(ctx context.Context, page, pageSize int) (*types.HistoryPage, error)
	Ping(ctx context.Context) error
	Close()
}

// Pagination bounds. Requests outside these are clamped, mirroring the
// behavior callers rely on for arbitrary query parameters.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// StorageError indicates the backing store failed. Analysis itself is
// decoupled from persistence, so callers may still return the analysis and
// treat the failure as retryable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("history store %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// clampPaging normalizes page and pageSize into their valid ranges.
func clampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
