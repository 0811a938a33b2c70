package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/checkmend/checkmend/internal/adapters/outbound/config"
)

// registerResources registers all checkmend MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. checkmend://report - current audit report (read-only pass)
	s.AddResource(
		mcplib.NewResource(
			"checkmend://report",
			"Audit Report",
			mcplib.WithResourceDescription("Current audit report for the project, evaluated without applying repairs"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)

	// 2. checkmend://checklist - effective checklist
	s.AddResource(
		mcplib.NewResource(
			"checkmend://checklist",
			"Checklist",
			mcplib.WithResourceDescription("Effective checklist and repair catalog for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChecklistResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newService().Inspect(projectPath)
		if err != nil {
			return nil, fmt.Errorf("inspect failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "checkmend://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleChecklistResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
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

		data, err := json.MarshalIndent(effective, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling checklist: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "checkmend://checklist",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
