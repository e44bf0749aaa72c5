package history

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Memory is an in-process Store used for tests and single-node development.
type Memory struct {
	mu      sync.RWMutex
	records []types.AnalysisResult
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append stores a copy of the result. The caller's instance is never aliased.
func (m *Memory) Append(_ context.Context, result *types.AnalysisResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *result)
	return nil
}

// Query returns one page, most recent first, ties by resume_id descending.
func (m *Memory) Query(_ context.Context, page, pageSize int) (*types.HistoryPage, error) {
	page, pageSize = clampPaging(page, pageSize)

	m.mu.RLock()
	sorted := make([]types.AnalysisResult, len(m.records))
	copy(sorted, m.records)
	m.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		}
		return sorted[i].ResumeID > sorted[j].ResumeID
	})

	out := &types.HistoryPage{
		Items:      []types.AnalysisResult{},
		Page:       page,
		PageSize:   pageSize,
		TotalCount: len(sorted),
	}
	start := (page - 1) * pageSize
	if start >= len(sorted) {
		return out, nil
	}
	end := start + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	out.Items = sorted[start:end]
	return out, nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
