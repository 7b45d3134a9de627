package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
	"github.com/vaulthub/vaulthub-cli/internal/client/vault"
	"github.com/vaulthub/vaulthub-cli/internal/cryptox"
)

// List refetches and prints the vault list.
func (a *App) List(ctx context.Context) error {
	a.vaults.Refetch(ctx)
	if msg := a.vaults.Err(); msg != "" {
		printlnFn("Could not load vaults:", msg)
		return nil
	}

	vaults := a.vaults.Vaults()
	if len(vaults) == 0 {
		printlnFn("No vaults yet. Use 'new' to create one.")
		return nil
	}
	for _, v := range vaults {
		line := fmt.Sprintf("%s  %s", v.UniqueID, v.Name)
		if v.Category != "" {
			line += "  [" + v.Category + "]"
		}
		printlnFn(line)
	}
	return nil
}

// Show fetches a single vault and prints its metadata and value.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter vault id", os.Stdout)
	if err != nil {
		return err
	}

	loader := vault.NewLoader(a.api.GetVault)
	loader.Load(ctx, id)
	if msg := loader.Err(); msg != "" {
		printlnFn("Could not load vault:", msg)
		return nil
	}

	v := loader.Vault()
	printlnFn("Name:", v.Name)
	if v.Description != "" {
		printlnFn("Description:", v.Description)
	}
	if v.Category != "" {
		printlnFn("Category:", v.Category)
	}
	if v.UpdatedAt != nil {
		printlnFn("Updated:", v.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	printlnFn("Value:")
	printlnFn(v.Value)
	return nil
}

// Edit runs the vault edit workflow: fetch, seed the editor with the
// server-confirmed value, collect a new draft and save it. Leaving with
// unsaved changes requires an explicit discard confirmation.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter vault id", os.Stdout)
	if err != nil {
		return err
	}

	loader := vault.NewLoader(a.api.GetVault)
	loader.Load(ctx, id)
	if msg := loader.Err(); msg != "" {
		printlnFn("Could not load vault:", msg)
		return nil
	}
	v := loader.Vault()

	editor := vault.NewEditor(vault.EditorOptions{
		Save: func(ctx context.Context, value string) error {
			_, err := a.api.UpdateVault(ctx, v.UniqueID, api.UpdateVaultRequest{Value: value})
			return err
		},
		CopyFn: copyToClipboard,
		Notify: func(msg string) { printlnFn(msg) },
	})
	editor.Seed(v.Value)

	printlnFn("Editing " + v.Name + ". Current value:")
	printlnFn(editor.Original())

	draft, err := GetMultiline(a.reader, "Enter the new value", os.Stdout)
	if err != nil {
		return err
	}
	editor.SetValue(draft)

	if !editor.HasUnsavedChanges() {
		printlnFn("No changes.")
		return nil
	}

	for {
		if editor.Save(ctx) {
			return nil
		}
		printlnFn("Save failed:", editor.Err())

		retry, err := Confirm(a.reader, "Try a different value?", os.Stdout)
		if err != nil {
			return err
		}
		if !retry {
			discard, err := Confirm(a.reader, "Discard unsaved changes?", os.Stdout)
			if err != nil {
				return err
			}
			if discard {
				editor.Reset()
				return nil
			}
			continue
		}

		draft, err = GetMultiline(a.reader, "Enter the new value", os.Stdout)
		if err != nil {
			return err
		}
		editor.SetValue(draft)
	}
}

// Create makes a new vault. The unique id is generated client-side so the
// create call is idempotent from the server's point of view.
func (a *App) Create(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter vault name", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		printlnFn("Vault name cannot be empty")
		return nil
	}

	value, err := GetMultiline(a.reader, "Enter the secret value", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		printlnFn(vault.EmptyValueMessage)
		return nil
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category (optional)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateVault(ctx, api.CreateVaultRequest{
		UniqueID:    uuid.NewString(),
		Name:        name,
		Value:       strings.TrimSpace(value),
		Description: description,
		Category:    category,
	})
	if err != nil {
		printlnFn("Could not create vault:", err.Error())
		return nil
	}
	printlnFn("Created vault " + created.UniqueID)
	return nil
}

// Delete removes a vault after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter vault id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Delete vault "+id+"? This cannot be undone.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.api.DeleteVault(ctx, id); err != nil {
		printlnFn("Could not delete vault:", err.Error())
		return nil
	}
	printlnFn("Deleted.")
	return nil
}

// CopySecret puts a vault's server-confirmed value on the clipboard.
func (a *App) CopySecret(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter vault id", os.Stdout)
	if err != nil {
		return err
	}

	loader := vault.NewLoader(a.api.GetVault)
	loader.Load(ctx, id)
	if msg := loader.Err(); msg != "" {
		printlnFn("Could not load vault:", msg)
		return nil
	}

	editor := vault.NewEditor(vault.EditorOptions{
		CopyFn: copyToClipboard,
		Notify: func(msg string) { printlnFn(msg) },
	})
	editor.Seed(loader.Vault().Value)
	editor.Copy()
	return nil
}

// Reveal fetches a vault over the API-key surface and decrypts its value
// locally. The server never sees the plaintext on this path; the key is
// derived from the configured API key with the vault id as salt.
func (a *App) Reveal(ctx context.Context) error {
	if a.config.APIKey == "" {
		printlnFn("No API key configured. Set one with -k or VAULT_HUB_API_KEY.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter vault name (or id)", os.Stdout)
	if err != nil {
		return err
	}

	v, err := a.api.CliVaultByName(ctx, name)
	if err != nil {
		v, err = a.api.CliVault(ctx, name)
	}
	if err != nil {
		printlnFn("Could not fetch vault:", err.Error())
		return nil
	}

	plaintext, err := cryptox.DecryptVaultValue(v.Value, a.config.APIKey, v.UniqueID)
	if err != nil {
		printlnFn("Could not decrypt vault value:", err.Error())
		return nil
	}

	printlnFn("Name:", v.Name)
	printlnFn("Value:")
	printlnFn(plaintext)
	return nil
}
