package domain

import "fmt"

// Config holds settings loaded from .codeshift.yaml and the environment.
type Config struct {
	LatencyMS     int      `yaml:"latency_ms"     json:"latency_ms"`
	CacheSize     int      `yaml:"cache_size"     json:"cache_size"`
	Workers       int      `yaml:"workers"        json:"workers"`
	RecordHistory bool     `yaml:"record_history" json:"record_history"`
	DisabledRules []string `yaml:"disabled_rules" json:"disabled_rules,omitempty"`
	DefaultTarget Language `yaml:"default_target" json:"default_target"`
}

const (
	DefaultLatencyMS = 400
	DefaultCacheSize = 128
	DefaultWorkers   = 4
)

// DefaultConfig returns the settings used when no file or override is present.
func DefaultConfig() Config {
	return Config{
		LatencyMS:     DefaultLatencyMS,
		CacheSize:     DefaultCacheSize,
		Workers:       DefaultWorkers,
		DefaultTarget: LangJavaScript,
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
// knownRules lists the fix rule names that disabled_rules may reference.
func (c Config) Validate(knownRules []string) error {
	if c.LatencyMS < 0 {
		return fmt.Errorf("%w: latency_ms must be >= 0, got %d", ErrInvalidConfig, c.LatencyMS)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must be >= 0, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.DefaultTarget != "" && !c.DefaultTarget.IsSupported() {
		return fmt.Errorf("%w: unknown default_target %q", ErrInvalidConfig, c.DefaultTarget)
	}

	known := make(map[string]bool, len(knownRules))
	for _, name := range knownRules {
		known[name] = true
	}
	for _, name := range c.DisabledRules {
		if !known[name] {
			return fmt.Errorf("%w: unknown rule %q in disabled_rules", ErrInvalidConfig, name)
		}
	}
	return nil
}
