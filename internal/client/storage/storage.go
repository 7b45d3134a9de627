// Package storage provides the client's durable local state. The only
// contractually persisted item is the bearer token, kept under a single
// well-known key; the store itself is a generic key-value table so the
// token never has a bespoke schema.
package storage

import (
	"context"

	"github.com/vaulthub/vaulthub-cli/internal/common"
)

// Repository is a durable string-keyed byte store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// TokenStore persists the bearer token. Absence of a stored token means
// the client is unauthenticated.
type TokenStore struct {
	repo Repository
}

func NewTokenStore(repo Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Token returns the persisted token, or "" when none is stored. Read
// errors degrade to "" so a corrupt store behaves as a logged-out client
// rather than a crash.
func (s *TokenStore) Token(ctx context.Context) string {
	v, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil || len(v) == 0 {
		return ""
	}
	return string(v)
}

// SetToken persists the token, replacing any previous value.
func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenStorageKey, []byte(token))
}

// ClearToken removes the persisted token.
func (s *TokenStore) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStorageKey)
}
