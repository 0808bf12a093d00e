package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("onerm", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("One-rep max calculator. Estimate a 1RM from a submaximal set (weight in kg and 1 to 20 reps) with the Epley, Brzycki or Lombardi formula, and derive training weights at 90% down to 20% of it."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolEstimate, Handler: h.estimate},
		server.ServerTool{Tool: toolCompare, Handler: h.compare},
		server.ServerTool{Tool: toolPercentageTable, Handler: h.percentageTable},
		server.ServerTool{Tool: toolListFormulas, Handler: h.listFormulas},
	)

	s.AddResources(
		server.ServerResource{Resource: resFormulas, Handler: h.formulaCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resFormulas = mcp.NewResource(
	"onerm://formulas",
	"Formulas",
	mcp.WithResourceDescription("Registered 1RM formulas with their expressions and the default selection"),
	mcp.WithMIMEType("application/json"),
)
