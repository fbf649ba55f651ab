package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/codeshift/internal/domain"
)

const historyFile = ".codeshift/history.json"

// MaxEntries bounds the history file. The oldest entries are dropped first.
const MaxEntries = 500

// FileHistory implements domain.ConversionHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Path returns the history file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, historyFile)
}

// Save appends entry, keeping at most MaxEntries. The file is written beside
// its final path and renamed into place.
func (h *FileHistory) Save(dir string, entry domain.HistoryEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	fp := Path(dir)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	tmp := fp + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return os.Rename(tmp, fp)
}

// Load returns the recorded entries oldest first. A missing file yields none.
func (h *FileHistory) Load(dir string) ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}

// Clear deletes the history file. A missing file is not an error.
func (h *FileHistory) Clear(dir string) error {
	if err := os.Remove(Path(dir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
