package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/fixer"
)

const (
	fileName = ".codeshift.yaml"
	envFile  = ".env"
)

// YAMLLoader implements domain.ConfigLoader by reading .codeshift.yaml, then
// applying CODESHIFT_* overrides from the environment or a .env file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .codeshift.yaml from dir. A missing file yields the defaults.
// Fields absent from the file keep their default values.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	}

	if err := applyEnv(&cfg, dir); err != nil {
		return domain.Config{}, err
	}

	if err := cfg.Validate(fixer.RuleNames()); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// applyEnv overlays CODESHIFT_* variables. The process environment wins over
// values read from dir/.env.
func applyEnv(cfg *domain.Config, dir string) error {
	dotenv, err := godotenv.Read(filepath.Join(dir, envFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"CODESHIFT_LATENCY_MS", &cfg.LatencyMS},
		{"CODESHIFT_CACHE_SIZE", &cfg.CacheSize},
		{"CODESHIFT_WORKERS", &cfg.Workers},
	}
	for _, e := range ints {
		raw, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := cast.ToIntE(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, e.key, err)
		}
		*e.dst = n
	}

	if raw, ok := lookup("CODESHIFT_RECORD_HISTORY"); ok {
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return fmt.Errorf("%w: CODESHIFT_RECORD_HISTORY: %v", domain.ErrInvalidConfig, err)
		}
		cfg.RecordHistory = b
	}

	if raw, ok := lookup("CODESHIFT_DEFAULT_TARGET"); ok {
		lang, err := domain.ParseLanguage(raw)
		if err != nil {
			return fmt.Errorf("%w: CODESHIFT_DEFAULT_TARGET: %v", domain.ErrInvalidConfig, err)
		}
		cfg.DefaultTarget = lang
	}
	return nil
}

const defaultFile = `# codeshift settings
#
# Artificial delay awaited by every conversion and test run, in milliseconds.
latency_ms: %d
# Capacity of the in-memory conversion cache. 0 disables it.
cache_size: %d
# Files converted concurrently by a batch conversion.
workers: %d
# Append each conversion to .codeshift/history.json.
record_history: false
# Fix rules to skip: %s
disabled_rules: []
# Target language when --to is omitted.
default_target: %s
`

// WriteDefault writes a commented default .codeshift.yaml into dir and returns
// its path. An existing file is kept unless force is set.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	d := domain.DefaultConfig()
	content := fmt.Sprintf(defaultFile, d.LatencyMS, d.CacheSize, d.Workers, strings.Join(fixer.RuleNames(), ", "), d.DefaultTarget)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", fileName, err)
	}
	return path, nil
}
