package ops

import (
	"context"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// Recency orderings.
const (
	RecentByModified = "modified"
	RecentByCreated  = "created"
)

// RecentInput contains parameters for the Recent operation.
type RecentInput struct {
	DocumentID string
	// By selects the ordering timestamp: "modified" (default) or "created".
	By string
	// Limit caps the result; defaults to DefaultRecentLimit.
	Limit int
}

// RecentItem is one node ordered by recency.
type RecentItem struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Created  int64  `json:"created"`
	Modified int64  `json:"modified"`
	Link     string `json:"link"`
}

// RecentOutput contains the result of the Recent operation.
type RecentOutput struct {
	DocumentID string       `json:"document_id"`
	By         string       `json:"by"`
	Items      []RecentItem `json:"items"`
}

// Recent lists the most recently created or modified nodes of a document,
// newest first. The synthetic root is excluded.
func Recent(ctx context.Context, api API, cfg *config.Config, input RecentInput) (*RecentOutput, error) {
	if err := validation.Validate(input.DocumentID, validation.Required); err != nil {
		return nil, errors.NewInvalidRequest("document_id is required")
	}
	by := input.By
	if by == "" {
		by = RecentByModified
	}
	if by != RecentByModified && by != RecentByCreated {
		return nil, errors.NewInvalidRequest("by must be \"modified\" or \"created\"")
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	doc, err := api.ReadDocument(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}

	rootID := outline.FindRoot(doc.Nodes)
	items := make([]RecentItem, 0, len(doc.Nodes))
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		if n.ID == rootID {
			continue
		}
		items = append(items, RecentItem{
			ID:       n.ID,
			Content:  n.Content,
			Created:  n.Created,
			Modified: n.Modified,
			Link:     dynalist.BuildLink(cfg.DocBaseURL, input.DocumentID, n.ID),
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		if by == RecentByCreated {
			return items[a].Created > items[b].Created
		}
		return items[a].Modified > items[b].Modified
	})
	if len(items) > limit {
		items = items[:limit]
	}

	return &RecentOutput{DocumentID: input.DocumentID, By: by, Items: items}, nil
}
