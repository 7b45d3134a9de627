package vault

import (
	"context"
	"strings"
)

// EmptyValueMessage is the local validation error for a draft that trims
// to nothing. It is produced without any network call.
const EmptyValueMessage = "Secret value cannot be empty"

// SaveFunc persists the new value for the vault being edited. The
// production implementation wraps (*api.Client).UpdateVault.
type SaveFunc func(ctx context.Context, value string) error

// Editor manages the dirty draft of a vault value. The draft is seeded
// from the server-confirmed value exactly once; later refetches update the
// original for comparison but never clobber what the user typed. Saving
// and discarding are always explicit.
type Editor struct {
	save    SaveFunc
	copyFn  func(text string) error
	notify  func(msg string)
	onSaved func()

	original    string
	edited      string
	initialized bool
	errMsg      string
}

// EditorOptions wires the editor's side effects. CopyFn writes to the
// system clipboard; Notify shows a transient notification; OnSaved
// typically exits edit mode. All are optional.
type EditorOptions struct {
	Save    SaveFunc
	CopyFn  func(text string) error
	Notify  func(msg string)
	OnSaved func()
}

func NewEditor(opts EditorOptions) *Editor {
	e := &Editor{
		save:    opts.Save,
		copyFn:  opts.CopyFn,
		notify:  opts.Notify,
		onSaved: opts.OnSaved,
	}
	if e.notify == nil {
		e.notify = func(string) {}
	}
	return e
}

// Seed initializes the draft from the server-confirmed value. Only the
// first call takes effect: a refetch arriving mid-edit must not silently
// overwrite unsaved input, so later calls update only the comparison
// baseline.
func (e *Editor) Seed(originalValue string) {
	if !e.initialized {
		e.edited = originalValue
		e.initialized = true
	}
	e.original = originalValue
}

// SetValue replaces the draft with what the user typed.
func (e *Editor) SetValue(v string) {
	e.edited = v
}

// Value returns the current draft.
func (e *Editor) Value() string {
	return e.edited
}

// Original returns the server-confirmed value.
func (e *Editor) Original() string {
	return e.original
}

// HasUnsavedChanges compares draft and original byte for byte. No trimming
// here — only submission trims.
func (e *Editor) HasUnsavedChanges() bool {
	return e.edited != e.original
}

// Err returns the current validation or save error message, or "".
func (e *Editor) Err() string {
	return e.errMsg
}

// Save validates and persists the draft. An empty trimmed draft is
// rejected locally without touching the network. Save never panics past
// its boundary; callers branch on the returned bool.
func (e *Editor) Save(ctx context.Context) bool {
	trimmed := strings.TrimSpace(e.edited)
	if trimmed == "" {
		e.errMsg = EmptyValueMessage
		return false
	}

	if err := e.save(ctx, trimmed); err != nil {
		e.errMsg = err.Error()
		return false
	}

	e.errMsg = ""
	e.original = trimmed
	e.edited = trimmed
	e.notify("Vault updated")
	if e.onSaved != nil {
		e.onSaved()
	}
	return true
}

// Copy writes the original, server-confirmed value to the clipboard — not
// the in-progress draft. Success and failure are reported via the
// transient notification.
func (e *Editor) Copy() {
	if e.copyFn == nil {
		e.notify("Clipboard not available")
		return
	}
	if err := e.copyFn(e.original); err != nil {
		e.notify("Failed to copy to clipboard")
		return
	}
	e.notify("Copied to clipboard")
}

// Reset reverts the draft to the original value and clears any error.
func (e *Editor) Reset() {
	e.edited = e.original
	e.errMsg = ""
}
