// Package vault implements the client-side vault workflows: on-demand
// loading of a vault's decrypted value and the explicit edit/save/copy
// draft handling around it. Values are never auto-saved.
package vault

import (
	"context"
	"sync"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

// FetchFunc loads one full vault. The production implementation is
// (*api.Client).GetVault.
type FetchFunc func(ctx context.Context, uniqueID string) (*api.Vault, error)

// Loader fetches a single vault's full record on demand. Each fetch is
// stamped with a monotonic generation; only the response matching the
// newest generation is applied, so a stale response from a superseded
// fetch can never overwrite fresher state.
type Loader struct {
	fetch FetchFunc

	mu       sync.Mutex
	uniqueID string
	gen      uint64
	vault    *api.Vault
	loading  bool
	errMsg   string
}

func NewLoader(fetch FetchFunc) *Loader {
	return &Loader{fetch: fetch}
}

// Load fetches the vault with the given id, replacing whatever key the
// loader was tracking before. On failure the previously loaded vault is
// left untouched so a retry keeps its context on screen.
func (l *Loader) Load(ctx context.Context, uniqueID string) {
	l.mu.Lock()
	l.uniqueID = uniqueID
	l.gen++
	gen := l.gen
	l.loading = true
	l.errMsg = ""
	l.mu.Unlock()

	v, err := l.fetch(ctx, uniqueID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		// A newer Load superseded this fetch; drop the result.
		return
	}
	l.loading = false
	if err != nil {
		l.errMsg = err.Error()
		return
	}
	l.vault = v
}

// Refetch re-runs the fetch for the current key. Idempotent: repeated
// calls issue the same request and converge on the same state.
func (l *Loader) Refetch(ctx context.Context) {
	l.mu.Lock()
	id := l.uniqueID
	l.mu.Unlock()
	if id == "" {
		return
	}
	l.Load(ctx, id)
}

// Vault returns the last successfully loaded vault, or nil.
func (l *Loader) Vault() *api.Vault {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.vault
}

// IsLoading reports whether a fetch is in flight.
func (l *Loader) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the display message of the last failed fetch, or "".
func (l *Loader) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}
