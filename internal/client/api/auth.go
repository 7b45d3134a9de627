package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup creates an account and returns a bearer token.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	var resp AuthResponse
	req := SignupRequest{Email: email, Password: password, Name: name}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the server so the logout lands in the audit trail.
// Callers treat failures as best-effort.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

// GetCurrentUser fetches the profile of the token's owner. It doubles as
// token validation during session bootstrap.
func (c *Client) GetCurrentUser(ctx context.Context) (*GetUserResponse, error) {
	var resp GetUserResponse
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestPasswordReset asks the server to email a reset link. The server
// answers with the same generic message whether or not the account exists.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*MessageResponse, error) {
	var resp MessageResponse
	req := RequestPasswordResetRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/auth/password/reset/request", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword completes the emailed reset flow.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var resp MessageResponse
	req := ResetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/api/auth/password/reset/confirm", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestMagicLink asks the server to email a single-use login link.
// Same enumeration-resistant contract as RequestPasswordReset.
func (c *Client) RequestMagicLink(ctx context.Context, email string) (*MessageResponse, error) {
	var resp MessageResponse
	req := RequestMagicLinkRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/auth/magic-link/request", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OidcLoginURL is the server-side OIDC entry point. The flow is a full
// browser navigation; the client only constructs the URL.
func (c *Client) OidcLoginURL() string {
	return c.baseURL + "/api/auth/login/oidc"
}

// GetConfig fetches the public feature flags. No authentication required.
func (c *Client) GetConfig(ctx context.Context) (*ConfigResponse, error) {
	var resp ConfigResponse
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
