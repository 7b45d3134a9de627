package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_SeedInitializesOnce(t *testing.T) {
	e := NewEditor(EditorOptions{})

	e.Seed("server-v1")
	assert.Equal(t, "server-v1", e.Value())
	assert.False(t, e.HasUnsavedChanges())

	// User starts typing, then a refetch delivers a newer server value.
	e.SetValue("my draft")
	e.Seed("server-v2")

	assert.Equal(t, "my draft", e.Value(), "refetch must not clobber the draft")
	assert.Equal(t, "server-v2", e.Original())
	assert.True(t, e.HasUnsavedChanges())
}

func TestEditor_EmptySaveRejectedLocally(t *testing.T) {
	var calls int
	e := NewEditor(EditorOptions{
		Save: func(context.Context, string) error { calls++; return nil },
	})
	e.Seed("something")
	e.SetValue("   \n\t ")

	ok := e.Save(context.Background())

	assert.False(t, ok)
	assert.Equal(t, EmptyValueMessage, e.Err())
	assert.Zero(t, calls, "no network call for an empty draft")
}

func TestEditor_SaveTrimsAndConfirms(t *testing.T) {
	var saved string
	var notified []string
	var exited bool
	e := NewEditor(EditorOptions{
		Save:    func(_ context.Context, v string) error { saved = v; return nil },
		Notify:  func(msg string) { notified = append(notified, msg) },
		OnSaved: func() { exited = true },
	})
	e.Seed("old")
	e.SetValue("  new value  ")

	require.True(t, e.Save(context.Background()))

	assert.Equal(t, "new value", saved)
	assert.Equal(t, "new value", e.Original())
	assert.False(t, e.HasUnsavedChanges())
	assert.Equal(t, []string{"Vault updated"}, notified)
	assert.True(t, exited)
	assert.Empty(t, e.Err())
}

func TestEditor_SaveFailureKeepsDraft(t *testing.T) {
	e := NewEditor(EditorOptions{
		Save: func(context.Context, string) error { return errors.New("update failed") },
	})
	e.Seed("old")
	e.SetValue("new")

	assert.False(t, e.Save(context.Background()))
	assert.Equal(t, "update failed", e.Err())
	assert.Equal(t, "new", e.Value())
	assert.Equal(t, "old", e.Original())
	assert.True(t, e.HasUnsavedChanges())
}

func TestEditor_CopyUsesOriginalNotDraft(t *testing.T) {
	var copied string
	var notified []string
	e := NewEditor(EditorOptions{
		CopyFn: func(text string) error { copied = text; return nil },
		Notify: func(msg string) { notified = append(notified, msg) },
	})
	e.Seed("confirmed")
	e.SetValue("half-typed draft")

	e.Copy()

	assert.Equal(t, "confirmed", copied)
	assert.Equal(t, []string{"Copied to clipboard"}, notified)
}

func TestEditor_CopyFailureNotifies(t *testing.T) {
	var notified []string
	e := NewEditor(EditorOptions{
		CopyFn: func(string) error { return errors.New("no clipboard") },
		Notify: func(msg string) { notified = append(notified, msg) },
	})
	e.Seed("v")

	e.Copy()

	assert.Equal(t, []string{"Failed to copy to clipboard"}, notified)
}

func TestEditor_Reset(t *testing.T) {
	e := NewEditor(EditorOptions{})
	e.Seed("original")
	e.SetValue("")
	_ = e.Save(context.Background())
	require.NotEmpty(t, e.Err())

	e.Reset()

	assert.Equal(t, "original", e.Value())
	assert.False(t, e.HasUnsavedChanges())
	assert.Empty(t, e.Err())
}
