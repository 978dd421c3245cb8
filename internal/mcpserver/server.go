// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the zoodesk catalog queries for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/zoodesk/internal/alert"
	"github.com/starford/zoodesk/internal/catalog"
)

const formatURI = "zoodesk://catalog-format"

// Server wraps the MCP server with the catalog tools.
type Server struct {
	mcp *server.MCPServer
	svc *catalog.Service
}

// New creates a new MCP server with all catalog tools registered.
func New(svc *catalog.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"zoodesk",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_records",
		mcp.WithDescription("List the record names of the animals or habitats catalog, in file order."),
		mcp.WithString("category", mcp.Required(), mcp.Enum("animals", "habitats"),
			mcp.Description("Catalog to list")),
	), s.listRecords)

	s.mcp.AddTool(mcp.NewTool("lookup_record",
		mcp.WithDescription("Return the detail block of one record together with any warnings "+
			"annotated in it. The name is case-insensitive. A missing record is reported "+
			"with found=false, not as an error."),
		mcp.WithString("category", mcp.Required(), mcp.Enum("animals", "habitats"),
			mcp.Description("Catalog to search")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Record name, e.g. lion or penguin")),
	), s.lookupRecord)

	s.mcp.AddTool(mcp.NewTool("get_catalog_format",
		mcp.WithDescription("Returns the catalog file format description."),
	), s.getCatalogFormat)

	s.mcp.AddResource(
		mcp.NewResource(formatURI, "Catalog Format",
			mcp.WithResourceDescription("Line format of the animals and habitats catalog files."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readCatalogFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

type lookupResponse struct {
	catalog.Result
	Alerts []alert.Alert `json:"alerts"`
}

func (s *Server) listRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := catalog.ParseCategory(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	names := s.svc.ListNames(ctx, category)
	if len(names) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no %s found", category)), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) lookupRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category, err := catalog.ParseCategory(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec := &alert.Recorder{}
	res := s.svc.WithSink(rec).Lookup(ctx, category, name)
	out, err := json.MarshalIndent(lookupResponse{Result: res, Alerts: rec.Alerts()}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getCatalogFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(CatalogFormat), nil
}

func (s *Server) readCatalogFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      formatURI,
			MIMEType: "text/markdown",
			Text:     CatalogFormat,
		},
	}, nil
}
