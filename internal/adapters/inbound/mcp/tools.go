package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/checkmend/checkmend/internal/adapters/outbound/artifact"
	"github.com/checkmend/checkmend/internal/adapters/outbound/config"
	"github.com/checkmend/checkmend/internal/adapters/outbound/gitinfo"
	"github.com/checkmend/checkmend/internal/application"
)

// registerTools registers all checkmend MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. checkmend_audit
	s.AddTool(
		mcplib.NewTool("checkmend_audit",
			mcplib.WithDescription("Audit the project against its checklist, apply safe repairs, and return the full report as JSON"),
			mcplib.WithBoolean("no_repair", mcplib.Description("Evaluate only, without touching the artifact tree")),
		),
		handleAudit(projectPath),
	)

	// 2. checkmend_repair
	s.AddTool(
		mcplib.NewTool("checkmend_repair",
			mcplib.WithDescription("Apply the repair catalog without auditing and return the repairs applied"),
		),
		handleRepair(projectPath),
	)

	// 3. checkmend_health
	s.AddTool(
		mcplib.NewTool("checkmend_health",
			mcplib.WithDescription("Return the project's current health tier and pass counts without applying repairs"),
		),
		handleHealth(projectPath),
	)

	// 4. checkmend_checklist
	s.AddTool(
		mcplib.NewTool("checkmend_checklist",
			mcplib.WithDescription("Return the effective checklist and repair catalog for the project as JSON"),
		),
		handleChecklist(projectPath),
	)
}

// newService creates the audit service with the standard outbound adapters.
func newService() *application.AuditService {
	return application.NewAuditService(
		artifact.NewProvider(),
		config.New(),
		gitinfo.New(),
	)
}

func handleAudit(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		noRepair, _ := request.GetArguments()["no_repair"].(bool)

		svc := newService()
		var (
			report interface{}
			err    error
		)
		if noRepair {
			report, err = svc.Inspect(projectPath)
		} else {
			report, err = svc.Audit(projectPath)
		}
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRepair(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newService().Repair(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("repair failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleHealth(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newService().Inspect(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("inspect failed: %v", err)), nil
		}

		summary := struct {
			OverallHealth string `json:"overall_health"`
			Passed        int    `json:"passed"`
			Total         int    `json:"total"`
			Issues        int    `json:"issues"`
		}{
			OverallHealth: string(report.OverallHealth),
			Passed:        report.Passed,
			Total:         report.Total,
			Issues:        len(report.IssuesFound),
		}
		return jsonResult(summary)
	}
}

func handleChecklist(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		effective := struct {
			ProjectType string      `json:"project_type"`
			Checklist   interface{} `json:"checklist"`
			Repairs     interface{} `json:"repairs"`
		}{
			ProjectType: string(cfg.ProjectType),
			Checklist:   cfg.EffectiveChecklist(),
			Repairs:     cfg.EffectiveCatalog(),
		}
		return jsonResult(effective)
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
