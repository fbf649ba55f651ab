package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/cache"
	"github.com/abdidvp/codeshift/internal/adapters/outbound/config"
	"github.com/abdidvp/codeshift/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/codeshift/internal/adapters/outbound/history"
	"github.com/abdidvp/codeshift/internal/application"
	"github.com/abdidvp/codeshift/internal/domain"
)

// app bundles the services a command needs, built from the config directory.
type app struct {
	dir         string
	cfg         domain.Config
	logger      *zap.Logger
	conversions *application.ConversionService
	tests       *application.TestService
}

func loadApp(cmd *cobra.Command) (*app, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	return loadAppAt(cmd, dir)
}

func loadAppAt(cmd *cobra.Command, dir string) (*app, error) {
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := config.New().Load(absDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := cache.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return &app{
		dir:    absDir,
		cfg:    cfg,
		logger: logger,
		conversions: application.NewConversionService(cfg, store, logger).
			WithHistory(absDir, history.New(), gitinfo.New()),
		tests: application.NewTestService(cfg, logger),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// newLogger writes human-readable records to w. Only warnings are shown
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

// readInput returns code when set, else the single file argument, else stdin.
func readInput(cmd *cobra.Command, code string, args []string) (string, error) {
	if code != "" {
		return code, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// parseLanguageFlag resolves a --lang style flag. "auto" and empty mean
// detect from code.
func parseLanguageFlag(raw, code string) (domain.Language, error) {
	if raw == "" || raw == "auto" {
		return application.DetectLanguage(code), nil
	}
	return domain.ParseLanguage(raw)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
