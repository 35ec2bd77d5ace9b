package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"treeline/internal/config"
	"treeline/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"list_documents": {
		def:     listDocumentsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleListDocuments },
	},
	"read_outline": {
		def:     readOutlineToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReadOutline },
	},
	"insert_outline": {
		def:     insertOutlineToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleInsertOutline },
	},
	"edit_node": {
		def:     editNodeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEditNode },
	},
	"move_node": {
		def:     moveNodeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMoveNode },
	},
	"delete_node": {
		def:     deleteNodeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeleteNode },
	},
	"capture_inbox": {
		def:     captureInboxToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCaptureInbox },
	},
	"recent_nodes": {
		def:     recentNodesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRecentNodes },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with treeline tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(api ops.API, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"treeline",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(api, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(api ops.API, cfg *config.Config, version string) error {
	return server.ServeStdio(NewServer(api, cfg, version))
}
