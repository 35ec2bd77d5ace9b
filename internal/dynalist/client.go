// Package dynalist is a thin client for the Dynalist HTTP API. It covers the
// four calls treeline consumes — file/list, doc/read, doc/edit, inbox/add —
// and maps the service's _code envelope onto the shared error taxonomy.
package dynalist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"treeline/internal/errors"
	"treeline/internal/outline"
)

const remoteCodeOK = "Ok"

// Client talks to one document-service endpoint with one token. It carries no
// document state; every read fetches fresh.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given endpoint. timeout bounds each call.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListFiles returns every document and folder visible to the token.
func (c *Client) ListFiles(ctx context.Context) (*FileList, error) {
	var resp fileListResponse
	if err := c.post(ctx, "/file/list", fileListRequest{Token: c.token}, &resp); err != nil {
		return nil, err
	}
	if err := resp.remoteErr(); err != nil {
		return nil, err
	}
	return &FileList{RootFileID: resp.RootFileID, Files: resp.Files}, nil
}

// ReadDocument fetches the full flat node list of one document, plus its
// title and version marker.
func (c *Client) ReadDocument(ctx context.Context, fileID string) (*outline.Document, error) {
	var resp docReadResponse
	if err := c.post(ctx, "/doc/read", docReadRequest{Token: c.token, FileID: fileID}, &resp); err != nil {
		return nil, err
	}
	if err := resp.remoteErr(); err != nil {
		return nil, err
	}

	nodes := make([]outline.Node, len(resp.Nodes))
	for i, w := range resp.Nodes {
		nodes[i] = outline.Node{
			ID:       w.ID,
			Content:  w.Content,
			Note:     w.Note,
			Children: w.Children,
			Checked:  w.Checked,
			Checkbox: w.Checkbox,
			Heading:  w.Heading,
			Color:    w.Color,
			Created:  w.Created,
			Modified: w.Modified,
		}
	}
	return &outline.Document{
		ID:      fileID,
		Title:   resp.Title,
		Version: resp.Version,
		Nodes:   nodes,
	}, nil
}

// EditDocument applies an ordered batch of changes to one document and
// returns the ids assigned to the batch's inserts, in insert order.
func (c *Client) EditDocument(ctx context.Context, fileID string, changes []Change) ([]string, error) {
	var resp docEditResponse
	req := docEditRequest{Token: c.token, FileID: fileID, Changes: changes}
	if err := c.post(ctx, "/doc/edit", req, &resp); err != nil {
		return nil, err
	}
	if err := resp.remoteErr(); err != nil {
		return nil, err
	}
	return resp.NewNodeIDs, nil
}

// AddToInbox creates one node in the implicit inbox document.
func (c *Client) AddToInbox(ctx context.Context, req InboxAddRequest) (*InboxAddResult, error) {
	var resp inboxAddResponse
	wire := inboxAddRequest{
		Token:    c.token,
		Index:    req.Index,
		Content:  req.Content,
		Note:     req.Note,
		Checkbox: req.Checkbox,
		Checked:  req.Checked,
	}
	if err := c.post(ctx, "/inbox/add", wire, &resp); err != nil {
		return nil, err
	}
	if err := resp.remoteErr(); err != nil {
		return nil, err
	}
	return &InboxAddResult{FileID: resp.FileID, NodeID: resp.NodeID, Index: resp.Index}, nil
}

// post sends one JSON request and decodes the response body into out.
// Transport and decode failures come back as INTERNAL; HTTP-level rejections
// as REMOTE_REJECTED.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return errors.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Request id for correlating client logs with server-side traces.
	req.Header.Set("X-Request-Id", ulid.Make().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("%s: %w", path, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("%s: read response: %w", path, err))
	}
	if resp.StatusCode != http.StatusOK {
		return errors.NewRemoteRejected(
			fmt.Sprintf("HTTP%d", resp.StatusCode),
			fmt.Sprintf("%s: %s", path, strings.TrimSpace(string(data))),
		)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewInternal(fmt.Errorf("%s: decode response: %w", path, err))
	}
	return nil
}

// remoteErr maps a non-Ok envelope to a structured error.
func (e envelope) remoteErr() error {
	switch e.Code {
	case remoteCodeOK:
		return nil
	case "InvalidToken", "Unauthorized":
		return errors.NewUnauthorized(e.Msg)
	default:
		return errors.NewRemoteRejected(e.Code, e.Msg)
	}
}
