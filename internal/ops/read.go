package ops

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// ReadInput contains parameters for the Read operation.
type ReadInput struct {
	DocumentID string
	// NodeID selects a subtree; empty reads the whole document.
	NodeID string
	// MaxDepth limits descent; nil means unlimited.
	MaxDepth *int
	// IncludeNotes emits note lines beneath their nodes.
	IncludeNotes bool
	// IncludeChecked keeps checked subtrees. nil means true.
	IncludeChecked *bool
}

// Breadcrumb is one ancestor on the path above a node, nearest first.
type Breadcrumb struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ReadOutput contains the result of the Read operation.
type ReadOutput struct {
	DocumentID string       `json:"document_id"`
	Title      string       `json:"title"`
	Version    int          `json:"version"`
	NodeID     string       `json:"node_id,omitempty"`
	Ancestors  []Breadcrumb `json:"ancestors,omitempty"`
	Outline    string       `json:"outline"`
	Link       string       `json:"link"`
}

// Read fetches a document and renders it (or one subtree) as indented text.
func Read(ctx context.Context, api API, cfg *config.Config, input ReadInput) (*ReadOutput, error) {
	if err := validation.Validate(input.DocumentID, validation.Required); err != nil {
		return nil, errors.NewInvalidRequest("document_id is required")
	}
	docID, nodeID := input.DocumentID, input.NodeID
	if nodeID != "" {
		docID, nodeID = resolveRef(input.DocumentID, input.NodeID)
	}

	doc, err := api.ReadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	includeChecked := true
	if input.IncludeChecked != nil {
		includeChecked = *input.IncludeChecked
	}
	opts := outline.RenderOptions{
		MaxDepth:       input.MaxDepth,
		IncludeNotes:   input.IncludeNotes,
		IncludeChecked: includeChecked,
		IndentWidth:    cfg.IndentWidth,
	}

	out := &ReadOutput{
		DocumentID: docID,
		Title:      doc.Title,
		Version:    doc.Version,
		Link:       dynalist.BuildLink(cfg.DocBaseURL, docID, nodeID),
	}

	if nodeID == "" {
		out.Outline = outline.RenderDocument(doc.Nodes, opts)
		return out, nil
	}

	if _, err := requireNode(doc, nodeID); err != nil {
		return nil, err
	}
	out.NodeID = nodeID
	out.Outline = outline.Render(doc.Nodes, nodeID, opts)

	byID := outline.Index(doc.Nodes)
	for _, id := range outline.Ancestors(doc.Nodes, nodeID, BreadcrumbLevels) {
		crumb := Breadcrumb{ID: id}
		if n, ok := byID[id]; ok {
			crumb.Content = n.Content
		}
		out.Ancestors = append(out.Ancestors, crumb)
	}
	return out, nil
}
