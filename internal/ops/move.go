package ops

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// MoveInput contains parameters for the Move operation. Exactly one
// positioning mode applies: ParentID (absolute, with optional Index), Before,
// or After. Before and After accept a node id or a deep link; a link into a
// different document is rejected before any mutation.
type MoveInput struct {
	DocumentID string
	NodeID     string

	ParentID string
	// Index is the position under ParentID; nil appends.
	Index *int

	Before string
	After  string
}

// Validate enforces required ids and a single positioning mode.
func (i MoveInput) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.DocumentID, validation.Required),
		validation.Field(&i.NodeID, validation.Required),
	)
	if err != nil {
		return errors.NewInvalidRequest(err.Error())
	}
	modes := 0
	for _, set := range []bool{i.ParentID != "", i.Before != "", i.After != ""} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		return errors.NewInvalidRequest("specify exactly one of parent_id, before, or after")
	}
	if i.Index != nil && i.ParentID == "" {
		return errors.NewInvalidRequest("index requires parent_id")
	}
	return nil
}

// MoveOutput contains the result of the Move operation.
type MoveOutput struct {
	DocumentID string `json:"document_id"`
	NodeID     string `json:"node_id"`
	ParentID   string `json:"parent_id"`
	Index      int    `json:"index"`
	Link       string `json:"link"`
}

// Move repositions a node, either to an absolute parent/index or relative to
// a sibling reference.
func Move(ctx context.Context, api API, cfg *config.Config, input MoveInput) (*MoveOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	docID, nodeID := resolveRef(input.DocumentID, input.NodeID)

	// Relative references must live in the same document as the node being
	// moved; reject before touching the remote.
	ref := input.Before
	if ref == "" {
		ref = input.After
	}
	var refID string
	if ref != "" {
		var refDoc string
		refDoc, refID = resolveRef(docID, ref)
		if refDoc != docID {
			return nil, errors.NewCrossDocument(docID, refDoc)
		}
	}

	doc, err := api.ReadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if _, err := requireNode(doc, nodeID); err != nil {
		return nil, err
	}

	var parentID string
	var index int
	switch {
	case input.ParentID != "":
		parentID = input.ParentID
		if _, err := requireNode(doc, parentID); err != nil {
			return nil, err
		}
		index = dynalist.IndexAppend
		if input.Index != nil {
			index = *input.Index
		}
	default:
		if _, err := requireNode(doc, refID); err != nil {
			return nil, err
		}
		pref, ok := outline.FindParent(doc.Nodes, refID)
		if !ok {
			return nil, errors.NewNoParent(refID)
		}
		parentID = pref.ParentID
		index = pref.Index
		if input.After != "" {
			index++
		}
	}

	change := dynalist.MoveChange(nodeID, parentID, index)
	if _, err := api.EditDocument(ctx, docID, []dynalist.Change{change}); err != nil {
		return nil, err
	}

	return &MoveOutput{
		DocumentID: docID,
		NodeID:     nodeID,
		ParentID:   parentID,
		Index:      index,
		Link:       dynalist.BuildLink(cfg.DocBaseURL, docID, nodeID),
	}, nil
}
