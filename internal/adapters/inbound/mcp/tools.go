package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/codeshift/internal/application"
	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/simulate"
)

// registerTools registers all codeshift MCP tools on the given server.
func registerTools(s *server.MCPServer, conversions *application.ConversionService, tests *application.TestService) {
	// 1. codeshift_convert
	s.AddTool(
		mcplib.NewTool("codeshift_convert",
			mcplib.WithDescription("Convert a snippet to another language, or repair known bug patterns when mode is fix. Unsupported pairs return a scaffold."),
			mcplib.WithString("source_code", mcplib.Required(), mcplib.Description("The snippet to convert")),
			mcplib.WithString("target_language", mcplib.Description("Target language tag (ignored in fix mode)")),
			mcplib.WithString("source_language", mcplib.Description("Source language tag; detected from the code when empty")),
			mcplib.WithString("mode", mcplib.Description("convert or fix (default: convert)")),
		),
		handleConvert(conversions),
	)

	// 2. codeshift_fix
	s.AddTool(
		mcplib.NewTool("codeshift_fix",
			mcplib.WithDescription("Repair known bug patterns and report which fix rules fired"),
			mcplib.WithString("source_code", mcplib.Required(), mcplib.Description("The snippet to fix")),
			mcplib.WithString("language", mcplib.Description("Language tag; detected from the code when empty")),
		),
		handleFix(conversions),
	)

	// 3. codeshift_detect
	s.AddTool(
		mcplib.NewTool("codeshift_detect",
			mcplib.WithDescription("Guess the language of a snippet"),
			mcplib.WithString("source_code", mcplib.Required(), mcplib.Description("The snippet to classify")),
		),
		handleDetect(),
	)

	// 4. codeshift_run_tests
	s.AddTool(
		mcplib.NewTool("codeshift_run_tests",
			mcplib.WithDescription("Evaluate test cases against what the snippet's function name says it does. The code is not executed."),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("The converted snippet")),
			mcplib.WithString("test_cases", mcplib.Required(), mcplib.Description(`JSON array of {"input": [...], "expected": value}`)),
			mcplib.WithString("language", mcplib.Description("Language tag; detected from the code when empty")),
		),
		handleRunTests(tests),
	)

	// 5. codeshift_languages
	s.AddTool(
		mcplib.NewTool("codeshift_languages",
			mcplib.WithDescription("List the selectable languages"),
		),
		handleLanguages(),
	)
}

// convertResponse is the codeshift_convert payload.
type convertResponse struct {
	Output         string          `json:"output"`
	SourceLanguage domain.Language `json:"source_language"`
	TargetLanguage domain.Language `json:"target_language,omitempty"`
	Mode           domain.Mode     `json:"mode"`
	Route          string          `json:"route"`
}

func handleConvert(conversions *application.ConversionService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("source_code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()

		modeArg, _ := args["mode"].(string)
		if modeArg == "" {
			modeArg = string(domain.ModeConvert)
		}
		mode, err := domain.ParseMode(modeArg)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		source, err := languageArg(args, "source_language", code)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var target domain.Language
		if mode == domain.ModeConvert {
			raw, _ := args["target_language"].(string)
			if raw == "" {
				return errorResult("target_language is required in convert mode"), nil
			}
			if target, err = domain.ParseLanguage(raw); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		req := domain.ConversionRequest{SourceCode: code, SourceLanguage: source, TargetLanguage: target, Mode: mode}
		route, err := application.RouteFor(req)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		out, err := conversions.Convert(req)
		if err != nil {
			return errorResult(fmt.Sprintf("conversion failed: %v", err)), nil
		}
		return jsonResult(convertResponse{
			Output:         out,
			SourceLanguage: source,
			TargetLanguage: target,
			Mode:           mode,
			Route:          string(route),
		})
	}
}

func handleFix(conversions *application.ConversionService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("source_code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lang, err := languageArg(request.GetArguments(), "language", code)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(conversions.Fix(code, lang))
	}
}

func handleDetect() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("source_code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lang := application.DetectLanguage(code)
		return jsonResult(domain.LanguageOption{Value: lang, Label: lang.Label()})
	}
}

// testRunResponse is the codeshift_run_tests payload.
type testRunResponse struct {
	Function string              `json:"function"`
	Category simulate.Category   `json:"category"`
	Summary  domain.TestSummary  `json:"summary"`
	Results  []domain.TestResult `json:"results"`
}

func handleRunTests(tests *application.TestService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		raw, err := request.RequireString("test_cases")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lang, err := languageArg(request.GetArguments(), "language", code)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cases := application.ParseTestCases(raw, nil)
		results := tests.RunTests(code, lang, cases)
		name := simulate.FunctionName(code, lang)
		return jsonResult(testRunResponse{
			Function: name,
			Category: simulate.Classify(name),
			Summary:  domain.Summarize(results),
			Results:  results,
		})
	}
}

func handleLanguages() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.SupportedLanguages)
	}
}

// languageArg parses an optional language argument. Empty or "auto" means
// detect from code.
func languageArg(args map[string]any, key, code string) (domain.Language, error) {
	raw, _ := args[key].(string)
	if raw == "" || raw == "auto" {
		return application.DetectLanguage(code), nil
	}
	return domain.ParseLanguage(raw)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
