package common

// TokenStorageKey is the single key under which the bearer token is kept
// in durable client-side storage. Absence of the key means unauthenticated.
const TokenStorageKey = "token"

// APIKeyHeaderName is the header used by the CLI vault surface, which
// authenticates with an API key instead of a bearer token.
const APIKeyHeaderName = "X-API-Key"
