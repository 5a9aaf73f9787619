package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	configAdapter "github.com/modgen/modgen/internal/adapters/outbound/config"
	"github.com/modgen/modgen/internal/adapters/outbound/gitinfo"
	historyAdapter "github.com/modgen/modgen/internal/adapters/outbound/history"
	"github.com/modgen/modgen/internal/adapters/outbound/writer"
	"github.com/modgen/modgen/internal/application"
	"github.com/modgen/modgen/internal/domain"
)

// registerTools registers all modgen MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. modgen_generate
	s.AddTool(
		mcplib.NewTool("modgen_generate",
			mcplib.WithDescription("Generate route, controller, service, model, interface and validation files for a resource. Overwrites existing files."),
			mcplib.WithString("resource",
				mcplib.Required(),
				mcplib.Description("Resource path, optionally nested, e.g. \"order\" or \"billing/invoices/order\""),
			),
			mcplib.WithString("layout",
				mcplib.Description("Layout mode: split-route, colocated or colocated-service (default from .modgen.yaml)"),
			),
		),
		handleGenerate(projectPath),
	)

	// 2. modgen_plan
	s.AddTool(
		mcplib.NewTool("modgen_plan",
			mcplib.WithDescription("Plan and render the files for a resource without writing anything. Returns paths and full content."),
			mcplib.WithString("resource",
				mcplib.Required(),
				mcplib.Description("Resource path, optionally nested"),
			),
			mcplib.WithString("layout",
				mcplib.Description("Layout mode: split-route, colocated or colocated-service (default from .modgen.yaml)"),
			),
		),
		handlePlan(projectPath),
	)

	// 3. modgen_history
	s.AddTool(
		mcplib.NewTool("modgen_history",
			mcplib.WithDescription("Returns the generation history for the project as JSON"),
		),
		handleHistory(projectPath),
	)
}

// resolveRun loads the project config and applies an optional layout override.
func resolveRun(projectPath, layoutOverride string) (*application.GenerateService, domain.LayoutMode, error) {
	cfg, err := configAdapter.New().Load(projectPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	if layoutOverride != "" {
		cfg.Layout = layoutOverride
	}

	mode, err := domain.ParseLayoutMode(cfg.Layout)
	if err != nil {
		return nil, "", err
	}

	outputRoot := cfg.OutputRoot
	if !filepath.IsAbs(outputRoot) {
		outputRoot = filepath.Join(projectPath, outputRoot)
	}

	return application.NewGenerateService(writer.New(outputRoot), log.Logger), mode, nil
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		resource, err := request.RequireString("resource")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		layoutOverride, _ := request.GetArguments()["layout"].(string)

		svc, mode, err := resolveRun(projectPath, layoutOverride)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Generate(resource, mode)
		if err != nil {
			// The report still names any files written before the failure.
			return errorResult(fmt.Sprintf("generation failed after %d file(s): %v", len(report), err)), nil
		}

		record := domain.GenerationRecord{
			Timestamp: time.Now().UTC(),
			Resource:  resource,
			Layout:    string(mode),
			Files:     report,
		}
		gi := gitinfo.New()
		if gi.IsGitRepo(projectPath) {
			if hash, hashErr := gi.CommitHash(projectPath); hashErr == nil {
				record.CommitHash = hash
			}
		}
		if saveErr := historyAdapter.New().Save(projectPath, record); saveErr != nil {
			log.Warn().Err(saveErr).Msg("could not save generation history")
		}

		return jsonResult(report)
	}
}

func handlePlan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		resource, err := request.RequireString("resource")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		layoutOverride, _ := request.GetArguments()["layout"].(string)

		svc, mode, err := resolveRun(projectPath, layoutOverride)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		artifacts, err := svc.Plan(resource, mode)
		if err != nil {
			return errorResult(fmt.Sprintf("planning failed: %v", err)), nil
		}
		return jsonResult(artifacts)
	}
}

func handleHistory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		records, err := historyAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		if records == nil {
			records = []domain.GenerationRecord{}
		}
		return jsonResult(records)
	}
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
