package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	".codeshift":   true,
}

const maxReadSize = 256 * 1024 // larger files are not snippets

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns every file under dir whose extension maps to a known language,
// in lexical order, with paths relative to dir. When dir is a regular file it
// is returned alone with its base name as the path.
func (s *FileScanner) Scan(dir string, excludePaths ...string) ([]domain.SourceFile, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		f, ok, err := readSource(absPath, filepath.Base(absPath))
		if err != nil || !ok {
			return nil, err
		}
		return []domain.SourceFile{f}, nil
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var files []domain.SourceFile
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		if d.IsDir() {
			if path != absPath && (skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[relPath]) {
				return filepath.SkipDir
			}
			return nil
		}

		f, ok, err := readSource(path, relPath)
		if err != nil {
			return err
		}
		if ok {
			files = append(files, f)
		}
		return nil
	})

	return files, err
}

func readSource(path, relPath string) (domain.SourceFile, bool, error) {
	lang, ok := domain.LanguageForExtension(filepath.Ext(path))
	if !ok {
		return domain.SourceFile{}, false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.SourceFile{}, false, err
	}
	if info.Size() > maxReadSize {
		return domain.SourceFile{}, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SourceFile{}, false, fmt.Errorf("reading %s: %w", relPath, err)
	}
	return domain.SourceFile{Path: relPath, Language: lang, Code: string(data)}, true, nil
}
