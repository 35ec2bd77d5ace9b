package ops

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// InsertInput contains parameters for the Insert operation.
type InsertInput struct {
	DocumentID string
	// ParentID is the insertion root; empty attaches at the document root.
	ParentID string
	// Text is indented or bulleted outline text; each top-level line
	// becomes a direct child of the insertion root.
	Text string
	// AtTop inserts before the parent's existing children instead of
	// appending after them.
	AtTop bool
}

// InsertOutput contains the result of the Insert operation.
type InsertOutput struct {
	DocumentID string `json:"document_id"`
	// Created is the total node count across all levels.
	Created int `json:"created"`
	// TopLevelIDs are the ids assigned to the level-0 nodes, in input order.
	TopLevelIDs []string `json:"top_level_ids"`
	Links       []string `json:"links"`
}

// Insert parses outline text and inserts it under the given parent with one
// batch call per tree depth level. A child cannot be inserted until its
// parent's id is known, so levels are strictly sequential: each call is
// awaited and its returned ids become the parent references of the next
// level. Nodes within one level ride in the same call.
//
// A failed call aborts the remaining levels; nodes created by earlier levels
// stay in the document and are reported in the error details.
func Insert(ctx context.Context, api API, cfg *config.Config, input InsertInput) (*InsertOutput, error) {
	if err := validation.Validate(input.DocumentID, validation.Required); err != nil {
		return nil, errors.NewInvalidRequest("document_id is required")
	}
	roots := outline.Parse(input.Text)
	if len(roots) == 0 {
		return nil, errors.NewInvalidRequest("text contains no outline items")
	}

	doc, err := api.ReadDocument(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}

	parentID := input.ParentID
	if parentID == "" {
		parentID = outline.FindRoot(doc.Nodes)
	}
	parent, err := requireNode(doc, parentID)
	if err != nil {
		return nil, err
	}

	// Level 0 lands among pre-existing children: either before them all or
	// appended after the last. Deeper levels go under freshly created
	// parents, which have no children to conflict with.
	startIndex := len(parent.Children)
	if input.AtTop {
		startIndex = 0
	}

	levels := outline.GroupByLevel(roots)
	out := &InsertOutput{DocumentID: input.DocumentID}
	var prevIDs []string

	for levelNum, level := range levels {
		changes := make([]dynalist.Change, 0, len(level))
		placed := make(map[int]int, len(level))
		for _, ln := range level {
			target := parentID
			index := startIndex + placed[ln.ParentIndex]
			if ln.ParentIndex != outline.AttachToRoot {
				target = prevIDs[ln.ParentIndex]
				index = placed[ln.ParentIndex]
			}
			placed[ln.ParentIndex]++
			changes = append(changes, dynalist.InsertChange(target, index, ln.Node.Content))
		}

		ids, err := api.EditDocument(ctx, input.DocumentID, changes)
		if err != nil {
			return nil, partialInsertErr(err, out.Created, levelNum)
		}
		if len(ids) != len(changes) {
			return nil, errors.NewRemoteRejected("IdCountMismatch",
				"service returned a different number of ids than inserts sent")
		}

		if levelNum == 0 {
			out.TopLevelIDs = ids
		}
		out.Created += len(ids)
		prevIDs = ids
	}

	for _, id := range out.TopLevelIDs {
		out.Links = append(out.Links, dynalist.BuildLink(cfg.DocBaseURL, input.DocumentID, id))
	}
	return out, nil
}

// partialInsertErr annotates a mid-batch failure with how far insertion got.
// There is no rollback; the caller surfaces the partial state.
func partialInsertErr(err error, created, level int) error {
	tErr, ok := err.(*errors.TreelineError)
	if !ok {
		tErr = errors.NewInternal(err)
	}
	if tErr.Details == nil {
		tErr.Details = make(map[string]any)
	}
	tErr.Details["created_before_failure"] = created
	tErr.Details["failed_level"] = level
	return tErr
}
