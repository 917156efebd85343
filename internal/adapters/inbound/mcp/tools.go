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
	"github.com/seokraft/seokraft/internal/adapters/outbound/pagefetch"
	"github.com/seokraft/seokraft/internal/adapters/outbound/recordfile"
	"github.com/seokraft/seokraft/internal/application"
	"github.com/seokraft/seokraft/internal/domain"
	"github.com/seokraft/seokraft/internal/domain/rules"
)

// registerTools registers all SEOKraft MCP tools on the given server.
func registerTools(s *server.MCPServer, contentPath string) {
	// 1. seokraft_validate
	s.AddTool(
		mcplib.NewTool("seokraft_validate",
			mcplib.WithDescription("Validate an SEO metadata record passed as JSON and return the quality report"),
			mcplib.WithString("record",
				mcplib.Required(),
				mcplib.Description("Metadata record as a JSON object (title, description, focus_keyword, keywords, canonical_url, json_ld, robots_directive, social fields)"),
			),
		),
		handleValidate(),
	)

	// 2. seokraft_validate_file
	s.AddTool(
		mcplib.NewTool("seokraft_validate_file",
			mcplib.WithDescription("Validate a metadata document on disk and return the quality report"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the document, relative to the content directory"),
			),
		),
		handleValidateFile(contentPath),
	)

	// 3. seokraft_audit
	s.AddTool(
		mcplib.NewTool("seokraft_audit",
			mcplib.WithDescription("Validate every metadata document under the content directory and return the aggregate audit"),
		),
		handleAudit(contentPath),
	)

	// 4. seokraft_inspect
	s.AddTool(
		mcplib.NewTool("seokraft_inspect",
			mcplib.WithDescription("Fetch a live page, extract its SEO metadata, and return the quality report"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to inspect"),
			),
		),
		handleInspect(),
	)
}

func handleValidate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("record")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var rec domain.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return errorResult(fmt.Sprintf("parsing record: %v", err)), nil
		}

		return jsonResult(rules.Validate(rec))
	}
}

func handleValidateFile(contentPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewValidateService(recordfile.New(), config.New(), nil, gitinfo.New())
		report, err := svc.ValidateFile(filepath.Join(contentPath, file))
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}

		return jsonResult(report)
	}
}

func handleAudit(contentPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewAuditService(recordfile.New(), config.New(), gitinfo.New())
		audit, err := svc.AuditDirectory(contentPath)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}

		return jsonResult(audit)
	}
}

func handleInspect() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		rec, err := pagefetch.New().Fetch(url)
		if err != nil {
			return errorResult(fmt.Sprintf("fetching page: %v", err)), nil
		}

		return jsonResult(rules.Validate(rec))
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
