package ops

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
)

// InboxInput contains parameters for the Inbox operation.
type InboxInput struct {
	Content  string
	Note     string
	Checkbox bool
	// Checked is only meaningful when Checkbox is true.
	Checked bool
	// AtTop inserts at the first inbox position instead of appending.
	AtTop bool
}

// InboxOutput contains the result of the Inbox operation.
type InboxOutput struct {
	DocumentID string `json:"document_id"`
	NodeID     string `json:"node_id"`
	Index      int    `json:"index"`
	Link       string `json:"link"`
}

// Inbox captures one item into the implicit inbox document. This is the entry
// point when no target document is known yet.
func Inbox(ctx context.Context, api API, cfg *config.Config, input InboxInput) (*InboxOutput, error) {
	if err := validation.Validate(input.Content, validation.Required); err != nil {
		return nil, errors.NewInvalidRequest("content is required")
	}

	index := dynalist.IndexAppend
	if input.AtTop {
		index = 0
	}
	res, err := api.AddToInbox(ctx, dynalist.InboxAddRequest{
		Content:  input.Content,
		Note:     input.Note,
		Checkbox: input.Checkbox,
		Checked:  input.Checked && input.Checkbox,
		Index:    index,
	})
	if err != nil {
		return nil, err
	}

	return &InboxOutput{
		DocumentID: res.FileID,
		NodeID:     res.NodeID,
		Index:      res.Index,
		Link:       dynalist.BuildLink(cfg.DocBaseURL, res.FileID, res.NodeID),
	}, nil
}
