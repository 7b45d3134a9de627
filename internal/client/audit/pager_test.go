package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

// fakeAuditServer serves totalCount events, newest first, sliced into pages.
func fakeAuditServer(totalCount int, calls *[][2]int) FetchPageFunc {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return func(_ context.Context, pageSize, pageIndex int) (*api.AuditLogsResponse, error) {
		if calls != nil {
			*calls = append(*calls, [2]int{pageSize, pageIndex})
		}
		start := (pageIndex - 1) * pageSize
		var logs []api.AuditLog
		for i := start; i < start+pageSize && i < totalCount; i++ {
			logs = append(logs, api.AuditLog{
				Action:    api.ActionReadVault,
				CreatedAt: base.Add(-time.Duration(i) * time.Minute),
				IPAddress: fmt.Sprintf("10.0.0.%d", i),
			})
		}
		return &api.AuditLogsResponse{
			AuditLogs:  logs,
			TotalCount: totalCount,
			PageSize:   pageSize,
			PageIndex:  pageIndex,
		}, nil
	}
}

func TestPager_TotalPages(t *testing.T) {
	tests := []struct {
		totalCount int
		pageSize   int
		want       int
	}{
		{45, 20, 3},
		{40, 20, 2},
		{41, 20, 3},
		{0, 20, 1},
		{1, 10, 1},
		{100, 100, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, totalPages(tc.totalCount, tc.pageSize), "%d/%d", tc.totalCount, tc.pageSize)
	}
}

func TestPager_GoToPageClampsOutOfRange(t *testing.T) {
	var calls [][2]int
	p := NewPager(fakeAuditServer(45, &calls))
	p.Reload(context.Background())
	require.Equal(t, 3, p.TotalPages())
	calls = nil

	p.GoToPage(context.Background(), 4)
	p.GoToPage(context.Background(), 0)
	p.GoToPage(context.Background(), -2)

	assert.Empty(t, calls, "out-of-range pages must not fetch")
	assert.Equal(t, 1, p.Page())

	p.GoToPage(context.Background(), 3)
	assert.Equal(t, 3, p.Page())
	require.Len(t, calls, 1)
	assert.Equal(t, [2]int{20, 3}, calls[0])
	// Last page of 45 at size 20 carries the remaining 5 events.
	assert.Len(t, p.Logs(), 5)
}

func TestPager_SetPageSizeResetsToFirstPage(t *testing.T) {
	p := NewPager(fakeAuditServer(45, nil))
	p.Reload(context.Background())
	p.GoToPage(context.Background(), 2)
	require.Equal(t, 2, p.Page())

	p.SetPageSize(context.Background(), 50)

	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 50, p.PageSize())
	assert.Equal(t, 1, p.TotalPages())
	assert.Len(t, p.Logs(), 45)
}

func TestPager_UnknownPageSizeIgnored(t *testing.T) {
	var calls [][2]int
	p := NewPager(fakeAuditServer(45, &calls))

	p.SetPageSize(context.Background(), 33)

	assert.Equal(t, DefaultPageSize, p.PageSize())
	assert.Empty(t, calls)
}

func TestPager_FetchErrorIsSurfaced(t *testing.T) {
	p := NewPager(func(context.Context, int, int) (*api.AuditLogsResponse, error) {
		return nil, errors.New("boom")
	})

	p.Reload(context.Background())

	assert.Equal(t, "boom", p.Err())
	assert.Empty(t, p.Logs())
}
