package audit

import (
	"context"
	"sync"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

// Feed is the accumulating ("load more") variant of the audit log screen.
// Each successful load appends to the end of the sequence, preserving the
// server's newest-first order, and advances the cursor.
type Feed struct {
	fetch    FetchPageFunc
	pageSize int

	mu         sync.Mutex
	logs       []api.AuditLog
	nextPage   int
	totalCount int
	known      bool
	loading    bool
	errMsg     string
}

func NewFeed(fetch FetchPageFunc, pageSize int) *Feed {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Feed{fetch: fetch, pageSize: pageSize, nextPage: 1}
}

// Logs returns the accumulated sequence.
func (f *Feed) Logs() []api.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logs
}

// TotalCount returns the server-reported total, or 0 before the first load.
func (f *Feed) TotalCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalCount
}

// IsLoadingMore reports whether a load is in flight.
func (f *Feed) IsLoadingMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Err returns the display message of the last failed load, or "".
func (f *Feed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// HasMore reports whether the feed has not yet accumulated every event.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.known || len(f.logs) < f.totalCount
}

// Reset discards the accumulated sequence so the next LoadMore starts
// from the first page again.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = nil
	f.nextPage = 1
	f.totalCount = 0
	f.known = false
	f.errMsg = ""
}

// LoadMore fetches the next page and appends it. It is a no-op while a
// load is already in flight or once the accumulated count has reached the
// server total — the in-flight guard, not a lock, is what makes rapid
// repeated calls issue exactly one request.
func (f *Feed) LoadMore(ctx context.Context) {
	f.mu.Lock()
	if f.loading || (f.known && len(f.logs) >= f.totalCount) {
		f.mu.Unlock()
		return
	}
	f.loading = true
	page := f.nextPage
	f.mu.Unlock()

	resp, err := f.fetch(ctx, f.pageSize, page)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.errMsg = err.Error()
		return
	}
	f.errMsg = ""
	f.logs = append(f.logs, resp.AuditLogs...)
	f.totalCount = resp.TotalCount
	f.known = true
	f.nextPage = page + 1
}
