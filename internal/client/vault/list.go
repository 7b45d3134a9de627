package vault

import (
	"context"
	"sync"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

// ListFunc loads the metadata-only vault list. The production
// implementation is (*api.Client).GetVaults; decrypted values never travel
// on this path.
type ListFunc func(ctx context.Context) ([]api.VaultLite, error)

// ListLoader holds the vault-list screen state: items, loading flag, and
// a display error. Same generation discipline as Loader.
type ListLoader struct {
	fetch ListFunc

	mu      sync.Mutex
	gen     uint64
	vaults  []api.VaultLite
	loading bool
	errMsg  string
}

func NewListLoader(fetch ListFunc) *ListLoader {
	return &ListLoader{fetch: fetch}
}

// Refetch loads the list. On failure the previous items stay visible
// alongside the error so a retry has context.
func (l *ListLoader) Refetch(ctx context.Context) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.loading = true
	l.errMsg = ""
	l.mu.Unlock()

	vaults, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	l.loading = false
	if err != nil {
		l.errMsg = err.Error()
		return
	}
	l.vaults = vaults
}

// Vaults returns the last successfully fetched list.
func (l *ListLoader) Vaults() []api.VaultLite {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.vaults
}

// IsLoading reports whether a fetch is in flight.
func (l *ListLoader) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the display message of the last failed fetch, or "".
func (l *ListLoader) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}
