package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// stubAPI implements ops.API for handler tests.
type stubAPI struct {
	doc      *outline.Document
	inboxRes *dynalist.InboxAddResult
	err      error
}

func (s *stubAPI) ListFiles(ctx context.Context) (*dynalist.FileList, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dynalist.FileList{}, nil
}

func (s *stubAPI) ReadDocument(ctx context.Context, fileID string) (*outline.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func (s *stubAPI) EditDocument(ctx context.Context, fileID string, changes []dynalist.Change) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]string, 0, len(changes))
	for range changes {
		ids = append(ids, "newid")
	}
	return ids, nil
}

func (s *stubAPI) AddToInbox(ctx context.Context, req dynalist.InboxAddRequest) (*dynalist.InboxAddResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.inboxRes, nil
}

func testCfg() *config.Config {
	return &config.Config{DocBaseURL: "https://dynalist.io/d", IndentWidth: 4}
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("content = %+v", res.Content)
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T", res.Content[0])
	}
	return tc.Text
}

func TestToolRegistryComplete(t *testing.T) {
	want := []string{
		"capture_inbox", "delete_node", "edit_node", "insert_outline",
		"list_documents", "move_node", "read_outline", "recent_nodes",
	}
	got := AllToolNames()
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("tools = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tool %d = %q, want %q", i, got[i], want[i])
		}
	}
	for name, entry := range toolRegistry {
		if entry.def.Name != name {
			t.Errorf("registry key %q maps to tool named %q", name, entry.def.Name)
		}
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"delete_node", "bogus", "read_outline", "nope"})
	sort.Strings(unknown)
	if len(unknown) != 2 || unknown[0] != "bogus" || unknown[1] != "nope" {
		t.Errorf("unknown = %v", unknown)
	}
	if got := ValidateDisabledTools(nil); len(got) != 0 {
		t.Errorf("ValidateDisabledTools(nil) = %v", got)
	}
}

func TestDecode(t *testing.T) {
	req := callReq(map[string]any{
		"document_id": "d1",
		"max_depth":   float64(2),
		"at_top":      true,
	})

	read, err := decode[ReadOutlineRequest](req)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if read.DocumentID != "d1" {
		t.Errorf("DocumentID = %q", read.DocumentID)
	}
	if read.MaxDepth == nil || *read.MaxDepth != 2 {
		t.Errorf("MaxDepth = %v", read.MaxDepth)
	}

	ins, err := decode[InsertOutlineRequest](req)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ins.AtTop {
		t.Error("AtTop lost in decode")
	}
}

func TestHandleReadOutline(t *testing.T) {
	api := &stubAPI{doc: &outline.Document{
		ID: "d1", Title: "Tasks", Nodes: []outline.Node{
			{ID: "root", Children: []string{"a"}},
			{ID: "a", Content: "hello"},
		},
	}}
	h := NewHandlers(api, testCfg())

	res, err := h.HandleReadOutline(context.Background(), callReq(map[string]any{
		"document_id": "d1",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	var payload struct {
		Outline string `json:"outline"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload.Title != "Tasks" || payload.Outline != "- hello\n" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestHandleCaptureInbox(t *testing.T) {
	api := &stubAPI{inboxRes: &dynalist.InboxAddResult{
		FileID: "inboxdoc", NodeID: "n1", Index: 0,
	}}
	h := NewHandlers(api, testCfg())

	res, err := h.HandleCaptureInbox(context.Background(), callReq(map[string]any{
		"content": "quick thought",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), "inboxdoc") {
		t.Errorf("result = %s", resultText(t, res))
	}
}

func TestErrorResultShape(t *testing.T) {
	res := errorResult(errors.NewNodeNotFound("n1"))
	if !res.IsError {
		t.Error("IsError should be set")
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Status  int            `json:"status"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Error.Code != "NODE_NOT_FOUND" || payload.Error.Status != 404 {
		t.Errorf("payload = %+v", payload.Error)
	}
	if payload.Error.Details["node_id"] != "n1" {
		t.Errorf("details = %v", payload.Error.Details)
	}
}

func TestErrorResultHidesInternalDetails(t *testing.T) {
	err := errors.NewInternal(nil)
	err.Details = map[string]any{"secret": "do not leak"}
	res := errorResult(err)

	text := resultText(t, res)
	if strings.Contains(text, "do not leak") {
		t.Errorf("internal details leaked: %s", text)
	}
}

func TestErrorResultPlainError(t *testing.T) {
	res := errorResult(context.DeadlineExceeded)
	text := resultText(t, res)
	if !strings.Contains(text, "INTERNAL") {
		t.Errorf("plain errors should surface as INTERNAL: %s", text)
	}
	if strings.Contains(text, "deadline") {
		t.Errorf("plain error text should not leak: %s", text)
	}
}

func TestHandlerMapsOperationError(t *testing.T) {
	h := NewHandlers(&stubAPI{err: errors.NewUnauthorized("")}, testCfg())

	res, err := h.HandleListDocuments(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, res), "UNAUTHORIZED") {
		t.Errorf("result = %s", resultText(t, res))
	}
}

func TestNewServerRespectsDisabledTools(t *testing.T) {
	cfg := testCfg()
	cfg.DisabledTools = []string{"delete_node"}
	s := NewServer(&stubAPI{}, cfg, "test")
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}
