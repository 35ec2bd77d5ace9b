package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"treeline/internal/config"
	"treeline/internal/errors"
	"treeline/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	api ops.API
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(api ops.API, cfg *config.Config) *Handlers {
	return &Handlers{api: api, cfg: cfg}
}

// Request types for each tool

// ReadOutlineRequest represents the arguments for read_outline.
type ReadOutlineRequest struct {
	DocumentID     string `json:"document_id"`
	NodeID         string `json:"node_id,omitempty"`
	MaxDepth       *int   `json:"max_depth,omitempty"`
	IncludeNotes   bool   `json:"include_notes,omitempty"`
	IncludeChecked *bool  `json:"include_checked,omitempty"`
}

// InsertOutlineRequest represents the arguments for insert_outline.
type InsertOutlineRequest struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
	ParentID   string `json:"parent_id,omitempty"`
	AtTop      bool   `json:"at_top,omitempty"`
}

// EditNodeRequest represents the arguments for edit_node.
type EditNodeRequest struct {
	DocumentID string  `json:"document_id"`
	NodeID     string  `json:"node_id"`
	Content    *string `json:"content,omitempty"`
	Note       *string `json:"note,omitempty"`
	Checked    *bool   `json:"checked,omitempty"`
	Checkbox   *bool   `json:"checkbox,omitempty"`
	Heading    *int    `json:"heading,omitempty"`
	Color      *int    `json:"color,omitempty"`
}

// MoveNodeRequest represents the arguments for move_node.
type MoveNodeRequest struct {
	DocumentID string `json:"document_id"`
	NodeID     string `json:"node_id"`
	ParentID   string `json:"parent_id,omitempty"`
	Index      *int   `json:"index,omitempty"`
	Before     string `json:"before,omitempty"`
	After      string `json:"after,omitempty"`
}

// DeleteNodeRequest represents the arguments for delete_node.
type DeleteNodeRequest struct {
	DocumentID string `json:"document_id"`
	NodeID     string `json:"node_id"`
}

// CaptureInboxRequest represents the arguments for capture_inbox.
type CaptureInboxRequest struct {
	Content  string `json:"content"`
	Note     string `json:"note,omitempty"`
	Checkbox bool   `json:"checkbox,omitempty"`
	Checked  bool   `json:"checked,omitempty"`
	AtTop    bool   `json:"at_top,omitempty"`
}

// RecentNodesRequest represents the arguments for recent_nodes.
type RecentNodesRequest struct {
	DocumentID string `json:"document_id"`
	By         string `json:"by,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// Handler implementations

// HandleListDocuments handles the list_documents tool call.
func (h *Handlers) HandleListDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListDocuments(ctx, h.api, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleReadOutline handles the read_outline tool call.
func (h *Handlers) HandleReadOutline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ReadOutlineRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Read(ctx, h.api, h.cfg, ops.ReadInput{
		DocumentID:     input.DocumentID,
		NodeID:         input.NodeID,
		MaxDepth:       input.MaxDepth,
		IncludeNotes:   input.IncludeNotes,
		IncludeChecked: input.IncludeChecked,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleInsertOutline handles the insert_outline tool call.
func (h *Handlers) HandleInsertOutline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[InsertOutlineRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Insert(ctx, h.api, h.cfg, ops.InsertInput{
		DocumentID: input.DocumentID,
		ParentID:   input.ParentID,
		Text:       input.Text,
		AtTop:      input.AtTop,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleEditNode handles the edit_node tool call.
func (h *Handlers) HandleEditNode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EditNodeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Edit(ctx, h.api, h.cfg, ops.EditInput{
		DocumentID: input.DocumentID,
		NodeID:     input.NodeID,
		Content:    input.Content,
		Note:       input.Note,
		Checked:    input.Checked,
		Checkbox:   input.Checkbox,
		Heading:    input.Heading,
		Color:      input.Color,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleMoveNode handles the move_node tool call.
func (h *Handlers) HandleMoveNode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MoveNodeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Move(ctx, h.api, h.cfg, ops.MoveInput{
		DocumentID: input.DocumentID,
		NodeID:     input.NodeID,
		ParentID:   input.ParentID,
		Index:      input.Index,
		Before:     input.Before,
		After:      input.After,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleDeleteNode handles the delete_node tool call.
func (h *Handlers) HandleDeleteNode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteNodeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(ctx, h.api, h.cfg, ops.DeleteInput{
		DocumentID: input.DocumentID,
		NodeID:     input.NodeID,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCaptureInbox handles the capture_inbox tool call.
func (h *Handlers) HandleCaptureInbox(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CaptureInboxRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Inbox(ctx, h.api, h.cfg, ops.InboxInput{
		Content:  input.Content,
		Note:     input.Note,
		Checkbox: input.Checkbox,
		Checked:  input.Checked,
		AtTop:    input.AtTop,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRecentNodes handles the recent_nodes tool call.
func (h *Handlers) HandleRecentNodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RecentNodesRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Recent(ctx, h.api, h.cfg, ops.RecentInput{
		DocumentID: input.DocumentID,
		By:         input.By,
		Limit:      input.Limit,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed to avoid leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tErr, ok := err.(*errors.TreelineError); ok {
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": tErr.Message,
			"status":  tErr.Status,
		}
		if tErr.Code != errors.ErrInternal && tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
