package history_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/history"
	"github.com/abdidvp/codeshift/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.HistoryEntry{
		Timestamp:  "2026-02-25T10:00:00Z",
		Mode:       domain.ModeConvert,
		Source:     domain.LangPython,
		Target:     domain.LangJavaScript,
		Input:      "def f(): pass",
		Output:     "function f() {\n}",
		CommitHash: "abc1234",
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
	assert.FileExists(t, filepath.Join(dir, ".codeshift", "history.json"))
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t1", Mode: domain.ModeFix}))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t2", Mode: domain.ModeConvert}))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t3", Mode: domain.ModeFix}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "t1", entries[0].Timestamp)
	assert.Equal(t, "t3", entries[2].Timestamp)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".codeshift"), 0755))
	require.NoError(t, os.WriteFile(history.Path(dir), []byte("{nope"), 0644))

	_, err := history.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .codeshift/history.json")
}

func TestHistory_Clear(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t1"}))

	require.NoError(t, h.Clear(dir))
	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, h.Clear(dir), "clearing twice is fine")
}

func TestHistory_KeepsNewestEntries(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	for i := 0; i < history.MaxEntries+3; i++ {
		require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: fmt.Sprint(i)}))
	}

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, history.MaxEntries)
	assert.Equal(t, "3", entries[0].Timestamp)
	assert.Equal(t, fmt.Sprint(history.MaxEntries+2), entries[len(entries)-1].Timestamp)

	_, err = os.Stat(history.Path(dir) + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
