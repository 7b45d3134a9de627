package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
)

func TestListLoader_Refetch(t *testing.T) {
	l := NewListLoader(func(context.Context) ([]api.VaultLite, error) {
		return []api.VaultLite{{UniqueID: "a"}, {UniqueID: "b"}}, nil
	})

	l.Refetch(context.Background())

	assert.Len(t, l.Vaults(), 2)
	assert.Empty(t, l.Err())
	assert.False(t, l.IsLoading())
}

func TestListLoader_FailureKeepsPreviousList(t *testing.T) {
	fail := false
	l := NewListLoader(func(context.Context) ([]api.VaultLite, error) {
		if fail {
			return nil, errors.New("unreachable")
		}
		return []api.VaultLite{{UniqueID: "a"}}, nil
	})

	l.Refetch(context.Background())
	fail = true
	l.Refetch(context.Background())

	assert.Equal(t, "unreachable", l.Err())
	assert.Len(t, l.Vaults(), 1)
}
