package api

import "time"

// Auth surface.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse carries the bearer token returned by login and signup.
type AuthResponse struct {
	Token string `json:"token"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type RequestMagicLinkRequest struct {
	Email string `json:"email"`
}

// MessageResponse is the generic confirmation returned by the
// enumeration-sensitive endpoints (password reset, magic link).
type MessageResponse struct {
	Message string `json:"message"`
}

// GetUserResponse is the authenticated user profile.
type GetUserResponse struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ConfigResponse exposes the public feature flags.
type ConfigResponse struct {
	OidcEnabled  bool `json:"oidcEnabled"`
	EmailEnabled bool `json:"emailEnabled"`
}

// Vault surface. VaultLite is the metadata-only form used by list
// responses; the full Vault carries the decrypted value and is returned
// only by the detail endpoint.

type VaultLite struct {
	UniqueID    string    `json:"uniqueId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Vault struct {
	UniqueID    string     `json:"uniqueId"`
	Name        string     `json:"name"`
	Value       string     `json:"value"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CreateVaultRequest struct {
	UniqueID    string `json:"uniqueId"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type UpdateVaultRequest struct {
	Name        string `json:"name,omitempty"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Audit surface.

// AuditAction enumerates the server-side audit log actions.
type AuditAction string

const (
	ActionLoginUser    AuditAction = "login_user"
	ActionRegisterUser AuditAction = "register_user"
	ActionLogoutUser   AuditAction = "logout_user"
	ActionReadVault    AuditAction = "read_vault"
	ActionCreateVault  AuditAction = "create_vault"
	ActionUpdateVault  AuditAction = "update_vault"
	ActionDeleteVault  AuditAction = "delete_vault"
	ActionCreateAPIKey AuditAction = "create_api_key"
	ActionUpdateAPIKey AuditAction = "update_api_key"
	ActionDeleteAPIKey AuditAction = "delete_api_key"
)

type AuditLog struct {
	Action    AuditAction `json:"action"`
	CreatedAt time.Time   `json:"createdAt"`
	IPAddress string      `json:"ipAddress,omitempty"`
	UserAgent string      `json:"userAgent,omitempty"`
	Vault     *VaultLite  `json:"vault,omitempty"`
	APIKey    *APIKey     `json:"apiKey,omitempty"`
}

type AuditLogsResponse struct {
	AuditLogs  []AuditLog `json:"auditLogs"`
	TotalCount int        `json:"totalCount"`
	PageSize   int        `json:"pageSize"`
	PageIndex  int        `json:"pageIndex"`
}

type AuditMetricsResponse struct {
	TotalEventsLast30Days  int `json:"totalEventsLast30Days"`
	EventsCountLast24Hours int `json:"eventsCountLast24Hours"`
	VaultEventsLast30Days  int `json:"vaultEventsLast30Days"`
	APIKeyEventsLast30Days int `json:"apiKeyEventsLast30Days"`
}

// API key surface. The key material itself is returned only by Create and
// never re-displayed.

type APIKey struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	IsActive   bool        `json:"isActive"`
	Vaults     []VaultLite `json:"vaults,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	ExpiresAt  *time.Time  `json:"expiresAt,omitempty"`
	LastUsedAt *time.Time  `json:"lastUsedAt,omitempty"`
}

type APIKeysResponse struct {
	APIKeys    []APIKey `json:"apiKeys"`
	TotalCount int      `json:"totalCount"`
	PageSize   int      `json:"pageSize"`
	PageIndex  int      `json:"pageIndex"`
}

type CreateAPIKeyRequest struct {
	Name           string     `json:"name"`
	VaultUniqueIDs []string   `json:"vaultUniqueIds,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

// CreateAPIKeyResponse is the only place the raw key is exposed.
type CreateAPIKeyResponse struct {
	APIKey APIKey `json:"apiKey"`
	Key    string `json:"key"`
}

type UpdateAPIKeyRequest struct {
	Name           string     `json:"name,omitempty"`
	VaultUniqueIDs []string   `json:"vaultUniqueIds,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	IsActive       *bool      `json:"isActive,omitempty"`
}
