package ops

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	DocumentID string
	NodeID     string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	DocumentID string `json:"document_id"`
	NodeID     string `json:"node_id"`
	// Deleted counts the node and all its descendants.
	Deleted int `json:"deleted"`
}

// Delete removes a node together with its whole subtree. The service promotes
// orphaned children to the deleted node's former parent, so every descendant
// is listed explicitly, innermost first, in a single batch.
func Delete(ctx context.Context, api API, cfg *config.Config, input DeleteInput) (*DeleteOutput, error) {
	err := validation.Errors{
		"document_id": validation.Validate(input.DocumentID, validation.Required),
		"node_id":     validation.Validate(input.NodeID, validation.Required),
	}.Filter()
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}
	docID, nodeID := resolveRef(input.DocumentID, input.NodeID)

	doc, err := api.ReadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if _, err := requireNode(doc, nodeID); err != nil {
		return nil, err
	}

	// Descendants is pre-order (parents first); deleting innermost first
	// means walking it backwards.
	ids := outline.Descendants(doc.Nodes, nodeID)
	changes := make([]dynalist.Change, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		changes = append(changes, dynalist.DeleteChange(ids[i]))
	}

	if _, err := api.EditDocument(ctx, docID, changes); err != nil {
		return nil, err
	}

	return &DeleteOutput{
		DocumentID: docID,
		NodeID:     nodeID,
		Deleted:    len(ids),
	}, nil
}
