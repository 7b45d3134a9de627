package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
	"github.com/vaulthub/vaulthub-cli/internal/common"
)

const keysPageSize = 50

// Keys lists the account's API keys.
func (a *App) Keys(ctx context.Context) error {
	resp, err := a.api.GetAPIKeys(ctx, keysPageSize, 1)
	if err != nil {
		printlnFn("Could not load API keys:", err.Error())
		return nil
	}
	if len(resp.APIKeys) == 0 {
		printlnFn("No API keys yet. Use 'addkey' to create one.")
		return nil
	}
	for _, k := range resp.APIKeys {
		status := "active"
		if !k.IsActive {
			status = "disabled"
		}
		line := fmt.Sprintf("%d  %-24s %s", k.ID, k.Name, status)
		if k.LastUsedAt != nil {
			line += "  last used " + k.LastUsedAt.Format("2006-01-02")
		}
		printlnFn(line)
	}
	return nil
}

// AddKey creates an API key. The raw key is shown exactly once; the server
// never returns it again.
func (a *App) AddKey(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter key name", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		printlnFn("Key name cannot be empty")
		return nil
	}

	ids, err := getSimpleText(a.reader, "Enter vault ids to grant, comma-separated (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	var vaultIDs []string
	for _, id := range strings.Split(ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			vaultIDs = append(vaultIDs, id)
		}
	}

	resp, err := a.api.CreateAPIKey(ctx, api.CreateAPIKeyRequest{Name: name, VaultUniqueIDs: vaultIDs})
	if err != nil {
		printlnFn("Could not create API key:", err.Error())
		return nil
	}
	printlnFn("Created key " + resp.APIKey.Name + ".")
	printlnFn("Copy it now, it will not be shown again:")
	printlnFn(resp.Key)
	return nil
}

// EditKey renames a key or toggles whether it is active.
func (a *App) EditKey(ctx context.Context) error {
	id, err := a.promptKeyID()
	if err != nil || id == 0 {
		return err
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	toggle, err := Confirm(a.reader, "Toggle active/disabled?", os.Stdout)
	if err != nil {
		return err
	}

	req := api.UpdateAPIKeyRequest{Name: name}
	if toggle {
		current, err := a.findKey(ctx, id)
		if err != nil {
			printlnFn("Could not load API key:", err.Error())
			return nil
		}
		flipped := !current.IsActive
		req.IsActive = &flipped
	}

	updated, err := a.api.UpdateAPIKey(ctx, id, req)
	if err != nil {
		printlnFn("Could not update API key:", err.Error())
		return nil
	}
	status := "active"
	if !updated.IsActive {
		status = "disabled"
	}
	printlnFn("Updated " + updated.Name + " (" + status + ").")
	return nil
}

// DeleteKey removes an API key after confirmation.
func (a *App) DeleteKey(ctx context.Context) error {
	id, err := a.promptKeyID()
	if err != nil || id == 0 {
		return err
	}

	ok, err := Confirm(a.reader, "Delete this key? Clients using it will stop working.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.api.DeleteAPIKey(ctx, id); err != nil {
		printlnFn("Could not delete API key:", err.Error())
		return nil
	}
	printlnFn("Deleted.")
	return nil
}

func (a *App) promptKeyID() (int64, error) {
	raw, err := getSimpleText(a.reader, "Enter key id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Key id must be a number")
		return 0, nil
	}
	return id, nil
}

func (a *App) findKey(ctx context.Context, id int64) (*api.APIKey, error) {
	resp, err := a.api.GetAPIKeys(ctx, keysPageSize, 1)
	if err != nil {
		return nil, err
	}
	for i := range resp.APIKeys {
		if resp.APIKeys[i].ID == id {
			return &resp.APIKeys[i], nil
		}
	}
	return nil, common.ErrNotFound
}
