package application

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/convert"
	"github.com/abdidvp/codeshift/internal/domain/fixer"
	"github.com/abdidvp/codeshift/internal/domain/rewrite"
	"github.com/abdidvp/codeshift/internal/domain/scaffold"
	"github.com/abdidvp/codeshift/internal/domain/sniff"
)

// Route names the path a request takes through the engine.
type Route string

const (
	RouteFix      Route = "fix"
	RoutePair     Route = "pair"
	RouteScaffold Route = "scaffold"
)

// RouteFor decides how req is served. Fix mode ignores the target; convert
// mode uses a dedicated pipeline when one exists and a scaffold otherwise,
// identity pairs included.
func RouteFor(req domain.ConversionRequest) (Route, error) {
	switch req.Mode {
	case domain.ModeFix:
		return RouteFix, nil
	case domain.ModeConvert:
		if convert.Supported(req.SourceLanguage, req.TargetLanguage) {
			return RoutePair, nil
		}
		return RouteScaffold, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode)
}

// CacheKey identifies a request's output. The target is left out in fix mode.
func CacheKey(req domain.ConversionRequest) string {
	target := req.TargetLanguage
	if req.Mode == domain.ModeFix {
		target = ""
	}
	h := sha256.New()
	for _, part := range []string{string(req.Mode), string(req.SourceLanguage), string(target), req.SourceCode} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ConversionService is the conversion entry point: it awaits the configured
// latency, then routes the request to the fix engine, a pair converter or the
// scaffold fallback.
type ConversionService struct {
	cfg    domain.Config
	fixer  *fixer.Engine
	cache  domain.ResultCache
	logger *zap.Logger

	historyMu  sync.Mutex
	history    domain.ConversionHistory
	revisions  domain.RevisionReader
	historyDir string
}

// NewConversionService builds a service from cfg. cache may be nil; a nil
// logger discards output.
func NewConversionService(cfg domain.Config, cache domain.ResultCache, logger *zap.Logger) *ConversionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversionService{
		cfg:    cfg,
		fixer:  fixer.Default().Without(cfg.DisabledRules...),
		cache:  cache,
		logger: logger,
	}
}

// WithHistory records every conversion under dir when the config enables
// history. revisions, if non-nil, stamps entries with the HEAD commit.
func (s *ConversionService) WithHistory(dir string, store domain.ConversionHistory, revisions domain.RevisionReader) *ConversionService {
	s.historyDir = dir
	s.history = store
	s.revisions = revisions
	return s
}

// FixRules returns the active fix catalog in application order.
func (s *ConversionService) FixRules() []rewrite.Rule {
	return s.fixer.Rules()
}

// Convert serves one request. An empty or "auto" source language is sniffed
// from the code first.
func (s *ConversionService) Convert(req domain.ConversionRequest) (string, error) {
	req = resolveSource(req)
	route, err := RouteFor(req)
	if err != nil {
		return "", err
	}
	s.wait()

	key := CacheKey(req)
	if s.cache != nil {
		if out, ok := s.cache.Get(key); ok {
			s.logRoute(req, route, true)
			s.record(req, out)
			return out, nil
		}
	}

	var out string
	switch route {
	case RouteFix:
		out = s.fixer.Fix(req.SourceCode, req.SourceLanguage)
	case RoutePair:
		out, _ = convert.Convert(req.SourceCode, req.SourceLanguage, req.TargetLanguage)
	default:
		out = scaffold.Scaffold(req.SourceCode, req.SourceLanguage, req.TargetLanguage)
	}

	if s.cache != nil {
		s.cache.Put(key, out)
	}
	s.logRoute(req, route, false)
	s.record(req, out)
	return out, nil
}

// Fix runs the fix engine and reports which rules fired. It awaits the same
// latency as Convert but bypasses the cache.
func (s *ConversionService) Fix(code string, lang domain.Language) domain.FixReport {
	if lang == "" || lang == "auto" {
		lang = sniff.Detect(code)
	}
	s.wait()
	report := s.fixer.Apply(code, lang)
	s.logger.Debug("fix applied", zap.String("source", string(lang)), zap.Int("rules", len(report.Applied)))
	s.record(domain.ConversionRequest{SourceCode: code, SourceLanguage: lang, Mode: domain.ModeFix}, report.Output)
	return report
}

// ConvertAll converts reqs concurrently, at most cfg.Workers at a time, and
// returns outputs in request order. The first failing request aborts the batch.
func (s *ConversionService) ConvertAll(reqs []domain.ConversionRequest) ([]string, error) {
	out := make([]string, len(reqs))
	var g errgroup.Group
	g.SetLimit(max(s.cfg.Workers, 1))
	for i, req := range reqs {
		g.Go(func() error {
			res, err := s.Convert(req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ConversionService) wait() {
	if s.cfg.LatencyMS > 0 {
		time.Sleep(time.Duration(s.cfg.LatencyMS) * time.Millisecond)
	}
}

func (s *ConversionService) logRoute(req domain.ConversionRequest, route Route, hit bool) {
	s.logger.Debug("conversion routed",
		zap.String("mode", string(req.Mode)),
		zap.String("source", string(req.SourceLanguage)),
		zap.String("target", string(req.TargetLanguage)),
		zap.String("route", string(route)),
		zap.Bool("cache_hit", hit),
	)
}

// record appends a history entry. Failures are logged, never returned.
func (s *ConversionService) record(req domain.ConversionRequest, output string) {
	if !s.cfg.RecordHistory || s.history == nil {
		return
	}
	entry := domain.HistoryEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Mode:      req.Mode,
		Source:    req.SourceLanguage,
		Input:     req.SourceCode,
		Output:    output,
	}
	if req.Mode == domain.ModeConvert {
		entry.Target = req.TargetLanguage
	}
	if s.revisions != nil {
		if hash, err := s.revisions.CommitHash(s.historyDir); err == nil {
			entry.CommitHash = hash
		}
	}

	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	if err := s.history.Save(s.historyDir, entry); err != nil {
		s.logger.Warn("saving history failed", zap.Error(err))
	}
}

func resolveSource(req domain.ConversionRequest) domain.ConversionRequest {
	if req.SourceLanguage == "" || req.SourceLanguage == "auto" {
		req.SourceLanguage = sniff.Detect(req.SourceCode)
	}
	return req
}
