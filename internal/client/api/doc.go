// Package api implements the VaultHub HTTP API client.
//
// The client centralizes outgoing-request augmentation and incoming-error
// normalization so callers never handle raw transport concerns: it attaches
// the persisted bearer token to every request, extracts a human-readable
// message from non-2xx response bodies, and funnels 401 responses through a
// debounced unauthorized guard so that a burst of concurrently failing
// requests triggers the session teardown exactly once.
package api
