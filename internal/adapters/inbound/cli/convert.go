package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/codeshift/internal/adapters/outbound/scanner"
	"github.com/abdidvp/codeshift/internal/adapters/outbound/tui"
	"github.com/abdidvp/codeshift/internal/application"
	"github.com/abdidvp/codeshift/internal/domain"
)

// conversionResult is the --json shape of one converted snippet.
type conversionResult struct {
	Path           string          `json:"path,omitempty"`
	SourceLanguage domain.Language `json:"source_language"`
	TargetLanguage domain.Language `json:"target_language,omitempty"`
	Mode           domain.Mode     `json:"mode"`
	Route          string          `json:"route"`
	Output         string          `json:"output"`
}

// snippet is one unit of convert input.
type snippet struct {
	path string
	lang domain.Language
	code string
}

func newConvertCmd() *cobra.Command {
	var (
		from       string
		to         string
		modeFlag   string
		code       string
		rev        string
		outDir     string
		raw        bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert snippets to another language",
		Long: "Convert a snippet from --code, stdin, files or directories. Pairs without a dedicated " +
			"pipeline produce a scaffold. With --mode fix the snippet is repaired instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			mode, err := domain.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			var target domain.Language
			if mode == domain.ModeConvert {
				target = a.cfg.DefaultTarget
				if to != "" {
					if target, err = domain.ParseLanguage(to); err != nil {
						return err
					}
				}
			}

			var forced domain.Language
			if from != "" && from != "auto" {
				if forced, err = domain.ParseLanguage(from); err != nil {
					return err
				}
			}

			snippets, err := collectSnippets(cmd, code, rev, args)
			if err != nil {
				return err
			}
			if len(snippets) == 0 {
				return fmt.Errorf("no convertible files found")
			}

			reqs := make([]domain.ConversionRequest, len(snippets))
			for i, sn := range snippets {
				source := sn.lang
				switch {
				case forced != "":
					source = forced
				case source == "":
					source = application.DetectLanguage(sn.code)
				}
				reqs[i] = domain.ConversionRequest{
					SourceCode:     sn.code,
					SourceLanguage: source,
					TargetLanguage: target,
					Mode:           mode,
				}
			}

			outputs, err := a.conversions.ConvertAll(reqs)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			results := make([]conversionResult, len(reqs))
			for i, req := range reqs {
				route, _ := application.RouteFor(req)
				results[i] = conversionResult{
					Path:           snippets[i].path,
					SourceLanguage: req.SourceLanguage,
					Mode:           mode,
					Route:          string(route),
					Output:         outputs[i],
				}
				if mode == domain.ModeConvert {
					results[i].TargetLanguage = target
				}
			}

			switch {
			case outDir != "":
				return writeOutputs(cmd, outDir, results)
			case jsonOutput:
				if code != "" || len(args) == 0 {
					return renderJSON(cmd, results[0])
				}
				return renderJSON(cmd, results)
			case raw:
				for _, r := range results {
					fmt.Fprintln(cmd.OutOrStdout(), r.Output)
				}
			default:
				for _, r := range results {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderConversion(tui.Conversion{
						Path:   r.Path,
						Source: r.SourceLanguage,
						Target: r.TargetLanguage,
						Mode:   r.Mode,
						Route:  r.Route,
						Output: r.Output,
					}))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "auto", "Source language tag, or auto to detect")
	cmd.Flags().StringVar(&to, "to", "", "Target language tag (default from config)")
	cmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeConvert), "convert or fix")
	cmd.Flags().StringVar(&code, "code", "", "Snippet to convert instead of files or stdin")
	cmd.Flags().StringVar(&rev, "rev", "", "Read file arguments at this git revision")
	cmd.Flags().StringVar(&outDir, "out", "", "Write each result into this directory")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the converted code")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// collectSnippets gathers input from --code, stdin, git revisions or the
// filesystem. File inputs carry the language of their extension.
func collectSnippets(cmd *cobra.Command, code, rev string, args []string) ([]snippet, error) {
	if code != "" || len(args) == 0 {
		text, err := readInput(cmd, code, nil)
		if err != nil {
			return nil, err
		}
		return []snippet{{code: text}}, nil
	}

	if rev != "" {
		git := gitinfo.New()
		var out []snippet
		for _, path := range args {
			text, err := git.ReadAtRevision(path, rev)
			if err != nil {
				return nil, err
			}
			lang, _ := domain.LanguageForExtension(filepath.Ext(path))
			out = append(out, snippet{path: path, lang: lang, code: text})
		}
		return out, nil
	}

	fs := scanner.New()
	var out []snippet
	for _, path := range args {
		files, err := fs.Scan(path)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", path, err)
		}
		for _, f := range files {
			out = append(out, snippet{path: f.Path, lang: f.Language, code: f.Code})
		}
	}
	return out, nil
}

// writeOutputs stores each result next to its base name with the extension of
// the language it is now written in.
func writeOutputs(cmd *cobra.Command, dir string, results []conversionResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for i, r := range results {
		lang := r.TargetLanguage
		if r.Mode == domain.ModeFix {
			lang = r.SourceLanguage
		}
		base := fmt.Sprintf("snippet-%d", i+1)
		if r.Path != "" {
			base = filepath.Base(r.Path)
			base = strings.TrimSuffix(base, filepath.Ext(base))
		}
		dest := filepath.Join(dir, base+lang.Extension())
		if err := os.WriteFile(dest, []byte(r.Output+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", dest)
	}
	return nil
}
