package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetVaults lists the caller's vaults. List responses never include
// decrypted values; use GetVault for that.
func (c *Client) GetVaults(ctx context.Context) ([]VaultLite, error) {
	var vaults []VaultLite
	if err := c.do(ctx, http.MethodGet, "/api/vaults", nil, nil, &vaults); err != nil {
		return nil, err
	}
	return vaults, nil
}

// GetVault fetches the full vault, including the decrypted value.
func (c *Client) GetVault(ctx context.Context, uniqueID string) (*Vault, error) {
	var v Vault
	if err := c.do(ctx, http.MethodGet, "/api/vaults/"+url.PathEscape(uniqueID), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVault creates a vault. The uniqueId is client-generated.
func (c *Client) CreateVault(ctx context.Context, req CreateVaultRequest) (*Vault, error) {
	var v Vault
	if err := c.do(ctx, http.MethodPost, "/api/vaults", nil, req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVault updates a vault's fields; empty fields are left unchanged.
func (c *Client) UpdateVault(ctx context.Context, uniqueID string, req UpdateVaultRequest) (*Vault, error) {
	var v Vault
	if err := c.do(ctx, http.MethodPut, "/api/vaults/"+url.PathEscape(uniqueID), nil, req, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVault deletes a vault.
func (c *Client) DeleteVault(ctx context.Context, uniqueID string) error {
	return c.do(ctx, http.MethodDelete, "/api/vaults/"+url.PathEscape(uniqueID), nil, nil, nil)
}

// CliVaults lists vaults accessible to the configured API key. Values on
// this surface arrive encrypted; see the cryptox package.
func (c *Client) CliVaults(ctx context.Context) ([]VaultLite, error) {
	var vaults []VaultLite
	if err := c.do(ctx, http.MethodGet, "/api/cli/vaults", nil, nil, &vaults); err != nil {
		return nil, err
	}
	return vaults, nil
}

// CliVault fetches a vault through the API-key surface. The returned value
// is AES-GCM ciphertext under a key derived from the API key and the vault
// uniqueId.
func (c *Client) CliVault(ctx context.Context, uniqueID string) (*Vault, error) {
	var v Vault
	if err := c.do(ctx, http.MethodGet, "/api/cli/vault/"+url.PathEscape(uniqueID), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CliVaultByName fetches a vault by name through the API-key surface.
func (c *Client) CliVaultByName(ctx context.Context, name string) (*Vault, error) {
	var v Vault
	if err := c.do(ctx, http.MethodGet, "/api/cli/vault/name/"+url.PathEscape(name), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
