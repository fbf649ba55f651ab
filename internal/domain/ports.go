package domain

// ConfigLoader reads the settings for a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// ResultCache memoizes conversion outputs by request key.
type ResultCache interface {
	Get(key string) (string, bool)
	Put(key, output string)
}

// ConversionHistory persists conversions performed by a host.
type ConversionHistory interface {
	Save(dir string, entry HistoryEntry) error
	Load(dir string) ([]HistoryEntry, error)
}

// SourceFile is a snippet discovered on disk.
type SourceFile struct {
	Path     string   `json:"path"`
	Language Language `json:"language"`
	Code     string   `json:"-"`
}

// SourceScanner discovers snippet files under a directory.
type SourceScanner interface {
	Scan(dir string, excludePaths ...string) ([]SourceFile, error)
}

// RevisionReader reads file contents from version control.
type RevisionReader interface {
	ReadAtRevision(path, rev string) (string, error)
	CommitHash(dir string) (string, error)
}
