package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seokraft/seokraft/internal/adapters/outbound/config"
	"github.com/seokraft/seokraft/internal/adapters/outbound/gitinfo"
	"github.com/seokraft/seokraft/internal/adapters/outbound/recordfile"
	"github.com/seokraft/seokraft/internal/application"
)

// registerResources registers all SEOKraft MCP resources on the given server.
func registerResources(s *server.MCPServer, contentPath string) {
	// 1. seokraft://audit - aggregate audit of the content directory
	s.AddResource(
		mcplib.NewResource(
			"seokraft://audit",
			"Content Audit",
			mcplib.WithResourceDescription("Aggregate metadata quality audit for the content directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleAuditResource(contentPath),
	)

	// 2. seokraft://config - effective project configuration
	s.AddResource(
		mcplib.NewResource(
			"seokraft://config",
			"Project Configuration",
			mcplib.WithResourceDescription("Effective quality thresholds for the content directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(contentPath),
	)

	// 3. seokraft://reports/{file} - per-document report (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"seokraft://reports/{file}",
			"Document Report",
			mcplib.WithTemplateDescription("Validation report for a specific metadata document"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleReportResource(contentPath),
	)
}

func handleAuditResource(contentPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := application.NewAuditService(recordfile.New(), config.New(), gitinfo.New())
		audit, err := svc.AuditDirectory(contentPath)
		if err != nil {
			return nil, fmt.Errorf("audit failed: %w", err)
		}

		return jsonResource("seokraft://audit", audit)
	}
}

func handleConfigResource(contentPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(contentPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		effective := struct {
			MinScore int `json:"min_score"`
			Limits   any `json:"limits"`
			Excludes any `json:"exclude_paths,omitempty"`
		}{
			MinScore: cfg.MinScore,
			Limits:   cfg.EffectiveLimits(),
			Excludes: cfg.ExcludePaths,
		}

		return jsonResource("seokraft://config", effective)
	}
}

func handleReportResource(contentPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		file, ok := request.Params.Arguments["file"].(string)
		if !ok || file == "" {
			return nil, fmt.Errorf("file is required")
		}

		svc := application.NewValidateService(recordfile.New(), config.New(), nil, gitinfo.New())
		report, err := svc.ValidateFile(filepath.Join(contentPath, file))
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		return jsonResource(request.Params.URI, report)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
