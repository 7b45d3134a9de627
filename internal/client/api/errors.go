package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vaulthub/vaulthub-cli/internal/common"
)

// Error is the normalized form of a non-2xx API response. Message is
// extracted best-effort from the response body; Status is the HTTP status
// code. Every failed request surfaces as an *Error — nothing is silently
// swallowed.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps well-known statuses onto the shared sentinel errors so that
// callers can branch with errors.Is without importing HTTP status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// errorBody matches the structured error shapes the server is known to
// produce. Older handlers wrap the message one level deeper.
type errorBody struct {
	Message string `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// extractMessage turns a non-2xx response body into a display message.
// Preference order: structured error.message / message / error field,
// then the raw body text, then "HTTP <status>: <statusText>".
func extractMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text != "" {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			if eb.Message != "" {
				return eb.Message
			}
			if len(eb.Error) > 0 {
				var nested errorBody
				if err := json.Unmarshal(eb.Error, &nested); err == nil && nested.Message != "" {
					return nested.Message
				}
				var plain string
				if err := json.Unmarshal(eb.Error, &plain); err == nil && plain != "" {
					return plain
				}
			}
		}
		return text
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
