// Package audit presents the append-only audit trail: a page-based pager,
// an accumulating load-more feed, and the one-shot dashboard metrics.
package audit

import (
	"context"
	"sync"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

// PageSizes is the fixed set of user-selectable page sizes.
var PageSizes = []int{10, 20, 50, 100}

// DefaultPageSize is used until the user picks another size.
const DefaultPageSize = 20

// FetchPageFunc loads one page of audit logs. pageIndex is 1-based.
type FetchPageFunc func(ctx context.Context, pageSize, pageIndex int) (*api.AuditLogsResponse, error)

// Pager is the discrete-pages variant of the audit log screen.
type Pager struct {
	fetch FetchPageFunc

	mu         sync.Mutex
	page       int
	pageSize   int
	totalCount int
	logs       []api.AuditLog
	loading    bool
	errMsg     string
}

func NewPager(fetch FetchPageFunc) *Pager {
	return &Pager{fetch: fetch, page: 1, pageSize: DefaultPageSize}
}

// TotalPages derives the page count from the last known total. Zero rows
// still mean one (empty) page.
func (p *Pager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return totalPages(p.totalCount, p.pageSize)
}

func totalPages(totalCount, pageSize int) int {
	if totalCount <= 0 {
		return 1
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Page returns the current 1-based page index.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// PageSize returns the current page size.
func (p *Pager) PageSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pageSize
}

// TotalCount returns the server-reported total number of events.
func (p *Pager) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalCount
}

// Logs returns the currently displayed page.
func (p *Pager) Logs() []api.AuditLog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.logs
}

// Err returns the display message of the last failed fetch, or "".
func (p *Pager) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// SetPageSize switches to one of the allowed sizes and resets to page 1.
// Unknown sizes are ignored.
func (p *Pager) SetPageSize(ctx context.Context, size int) {
	allowed := false
	for _, s := range PageSizes {
		if s == size {
			allowed = true
			break
		}
	}
	if !allowed {
		return
	}

	p.mu.Lock()
	p.pageSize = size
	p.page = 1
	p.mu.Unlock()
	p.Reload(ctx)
}

// GoToPage navigates to the given 1-based page. Requests outside
// [1, TotalPages] are no-ops: the current page is left unchanged and no
// fetch is issued.
func (p *Pager) GoToPage(ctx context.Context, page int) {
	p.mu.Lock()
	if page < 1 || page > totalPages(p.totalCount, p.pageSize) {
		p.mu.Unlock()
		return
	}
	p.page = page
	p.mu.Unlock()
	p.Reload(ctx)
}

// Reload fetches the current page.
func (p *Pager) Reload(ctx context.Context) {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return
	}
	p.loading = true
	size, page := p.pageSize, p.page
	p.mu.Unlock()

	resp, err := p.fetch(ctx, size, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.errMsg = ""
	p.logs = resp.AuditLogs
	p.totalCount = resp.TotalCount
}
