// Package ops implements the outline operations exposed through the CLI, MCP,
// and web surfaces. Every operation is a stateless function over a freshly
// fetched document snapshot: nothing is cached between calls, and every
// remote call is awaited before the next one is issued.
package ops

import (
	"context"
	"strings"

	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// Limits.
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100

	// BreadcrumbLevels caps how many ancestors a node read reports.
	BreadcrumbLevels = 5
)

// API is the slice of the document-service client the operations depend on.
type API interface {
	ListFiles(ctx context.Context) (*dynalist.FileList, error)
	ReadDocument(ctx context.Context, fileID string) (*outline.Document, error)
	EditDocument(ctx context.Context, fileID string, changes []dynalist.Change) ([]string, error)
	AddToInbox(ctx context.Context, req dynalist.InboxAddRequest) (*dynalist.InboxAddResult, error)
}

// resolveRef interprets ref as either a bare node id scoped to docID or a
// deep link, and returns the document and node ids it addresses.
func resolveRef(docID, ref string) (string, string) {
	if strings.Contains(ref, "/") || strings.Contains(ref, "#") {
		if d, n, err := dynalist.ParseLink(ref); err == nil && n != "" {
			return d, n
		}
	}
	return docID, ref
}

// requireNode looks id up in the fetched document.
func requireNode(doc *outline.Document, id string) (*outline.Node, error) {
	n, ok := outline.Index(doc.Nodes)[id]
	if !ok {
		return nil, errors.NewNodeNotFound(id)
	}
	return n, nil
}
