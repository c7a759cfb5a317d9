// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the journal feed to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/journal/internal/apperr"
	"github.com/starford/journal/internal/index"
	"github.com/starford/journal/internal/models"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 200

	itemFormatURI = "journal://item-format"
)

// Server wraps the MCP server with journal tools.
type Server struct {
	mcp *server.MCPServer
	idx index.FeedIndex
}

// New creates a new MCP server with all journal tools registered.
func New(idx index.FeedIndex) *Server {
	s := &Server{idx: idx}

	s.mcp = server.NewMCPServer(
		"Journal",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	sections := make([]string, 0, len(models.Sections()))
	for _, sec := range models.Sections() {
		sections = append(sections, string(sec))
	}

	s.mcp.AddTool(mcp.NewTool("recent_items",
		mcp.WithDescription("List the most recent journal items, newest first. "+
			"See the "+itemFormatURI+" resource for the record shape."),
		mcp.WithString("section", mcp.Description("Optional section filter"), mcp.Enum(sections...)),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items"), mcp.Min(1), mcp.Max(maxRecentLimit)),
	), s.recentItems)

	s.mcp.AddTool(mcp.NewTool("search_items",
		mcp.WithDescription("Full-text search through item titles and descriptions."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchItems)

	s.mcp.AddTool(mcp.NewTool("get_item",
		mcp.WithDescription("Get a single item by its site URL (e.g. /reads/some-book)."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Site URL of the item")),
	), s.getItem)

	s.mcp.AddResource(
		mcp.NewResource(itemFormatURI, "Recent Item Format",
			mcp.WithResourceDescription("Shape and derivation rules of a recent feed item."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readItemFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) recentItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section := req.GetString("section", "")
	if section != "" {
		if _, ok := models.ParseSection(section); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown section: %s", section)), nil
		}
	}
	limit := req.GetInt("limit", defaultRecentLimit)
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	limit = min(limit, maxRecentLimit)

	items, _, err := s.idx.ListItems(section, limit, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query must not be empty"), nil
	}
	results, err := s.idx.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	item, err := s.idx.GetItem(url)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", url)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(item, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readItemFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      itemFormatURI,
			MIMEType: "text/markdown",
			Text:     ItemFormat,
		},
	}, nil
}
