package ops

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
)

// EditInput contains parameters for the Edit operation. Pointer fields are
// overwritten when set and left alone when nil.
type EditInput struct {
	DocumentID string
	NodeID     string

	Content  *string
	Note     *string
	Checked  *bool
	Checkbox *bool
	Heading  *int
	Color    *int
}

// Validate enforces required ids, field ranges, and that at least one field
// is being changed.
func (i EditInput) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.DocumentID, validation.Required),
		validation.Field(&i.NodeID, validation.Required),
		validation.Field(&i.Heading, validation.Min(0), validation.Max(3)),
		validation.Field(&i.Color, validation.Min(0), validation.Max(6)),
	)
	if err != nil {
		return errors.NewInvalidRequest(err.Error())
	}
	if i.Content == nil && i.Note == nil && i.Checked == nil &&
		i.Checkbox == nil && i.Heading == nil && i.Color == nil {
		return errors.NewInvalidRequest("nothing to edit: set at least one field")
	}
	return nil
}

// EditOutput contains the result of the Edit operation.
type EditOutput struct {
	DocumentID string `json:"document_id"`
	NodeID     string `json:"node_id"`
	Link       string `json:"link"`
}

// Edit overwrites a subset of one node's fields.
func Edit(ctx context.Context, api API, cfg *config.Config, input EditInput) (*EditOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	docID, nodeID := resolveRef(input.DocumentID, input.NodeID)

	doc, err := api.ReadDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if _, err := requireNode(doc, nodeID); err != nil {
		return nil, err
	}

	change := dynalist.Change{
		Action:   dynalist.ActionEdit,
		NodeID:   nodeID,
		Content:  input.Content,
		Note:     input.Note,
		Checked:  input.Checked,
		Checkbox: input.Checkbox,
		Heading:  input.Heading,
		Color:    input.Color,
	}
	if _, err := api.EditDocument(ctx, docID, []dynalist.Change{change}); err != nil {
		return nil, err
	}

	return &EditOutput{
		DocumentID: docID,
		NodeID:     nodeID,
		Link:       dynalist.BuildLink(cfg.DocBaseURL, docID, nodeID),
	}, nil
}
