package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/codeshift/internal/application"
	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/convert"
	"github.com/abdidvp/codeshift/internal/domain/scaffold"
)

// registerResources registers all codeshift MCP resources on the given server.
func registerResources(s *server.MCPServer, conversions *application.ConversionService) {
	// 1. codeshift://languages - selectable language catalog
	s.AddResource(
		mcplib.NewResource(
			"codeshift://languages",
			"Languages",
			mcplib.WithResourceDescription("Selectable languages as {value, label} pairs"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource("codeshift://languages", func() any { return domain.SupportedLanguages }),
	)

	// 2. codeshift://pairs - pairs with a dedicated pipeline
	s.AddResource(
		mcplib.NewResource(
			"codeshift://pairs",
			"Conversion Pairs",
			mcplib.WithResourceDescription("Language pairs converted by a dedicated pipeline; all others produce a scaffold"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource("codeshift://pairs", func() any { return convert.Pairs() }),
	)

	// 3. codeshift://rules - active fix catalog
	s.AddResource(
		mcplib.NewResource(
			"codeshift://rules",
			"Fix Rules",
			mcplib.WithResourceDescription("Fix rules in application order"),
			mcplib.WithMIMEType("application/json"),
		),
		jsonResource("codeshift://rules", func() any { return ruleViews(conversions) }),
	)

	// 4. codeshift://scaffold/{language} - empty function skeleton (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"codeshift://scaffold/{language}",
			"Scaffold Skeleton",
			mcplib.WithTemplateDescription("Empty function skeleton emitted for a target language"),
			mcplib.WithTemplateMIMEType("text/plain"),
		),
		handleScaffoldResource(),
	)
}

type ruleView struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Explanation string `json:"explanation"`
}

func ruleViews(conversions *application.ConversionService) []ruleView {
	rules := conversions.FixRules()
	out := make([]ruleView, len(rules))
	for i, r := range rules {
		out[i] = ruleView{Name: r.Name, Pattern: r.Pattern.String(), Replacement: r.Replacement, Explanation: r.Explanation}
	}
	return out
}

func jsonResource(uri string, value func() any) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(value(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", uri, err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleScaffoldResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Template matching populates the arguments.
		var raw string
		switch v := request.Params.Arguments["language"].(type) {
		case string:
			raw = v
		case []string:
			if len(v) > 0 {
				raw = v[0]
			}
		}
		if raw == "" {
			return nil, fmt.Errorf("language is required")
		}

		lang, err := domain.ParseLanguage(raw)
		if err != nil {
			return nil, err
		}
		skeleton, _ := scaffold.Skeleton(lang)

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     skeleton,
			},
		}, nil
	}
}
