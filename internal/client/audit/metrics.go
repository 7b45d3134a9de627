package audit

import (
	"context"
	"sync"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
	"github.com/vaulthub/vaulthub-cli/internal/logging"
)

// FetchMetricsFunc loads the dashboard counters.
type FetchMetricsFunc func(ctx context.Context) (*api.AuditMetricsResponse, error)

// Metrics is the one-shot summary fetched independently of the log list.
// It is supplementary data: a failed fetch is logged, never surfaced as a
// blocking error, and the cards simply keep their loading indicator off
// with no values.
type Metrics struct {
	fetch FetchMetricsFunc
	log   logging.Logger

	mu      sync.Mutex
	values  *api.AuditMetricsResponse
	loading bool
}

func NewMetrics(fetch FetchMetricsFunc, log logging.Logger) *Metrics {
	if log == nil {
		log = logging.Discard()
	}
	return &Metrics{fetch: fetch, log: log}
}

// Load fetches the counters once per dashboard visit.
func (m *Metrics) Load(ctx context.Context) {
	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		return
	}
	m.loading = true
	m.mu.Unlock()

	values, err := m.fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.log.Warn(ctx, "failed to fetch audit metrics", "error", err)
		return
	}
	m.values = values
}

// Values returns the last fetched counters, or nil when unavailable.
func (m *Metrics) Values() *api.AuditMetricsResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values
}

// IsLoading reports whether the fetch is in flight, for the per-card
// loading indicator.
func (m *Metrics) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}
