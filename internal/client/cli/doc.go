// Package cli implements the interactive VaultHub terminal client: a
// read-eval-print loop over the session store, vault loaders and editor,
// audit pager and API-key management. All user input goes through small
// prompt helpers with test seams so command handlers can be exercised
// without a terminal.
package cli
