package ops

import (
	"context"

	"treeline/internal/config"
	"treeline/internal/dynalist"
)

// DocumentInfo describes one document visible to the token.
type DocumentInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Permission int    `json:"permission"`
	Link       string `json:"link"`
}

// ListDocumentsOutput contains the result of the ListDocuments operation.
type ListDocumentsOutput struct {
	Documents []DocumentInfo `json:"documents"`
}

// ListDocuments returns every document descriptor, folders filtered out.
func ListDocuments(ctx context.Context, api API, cfg *config.Config) (*ListDocumentsOutput, error) {
	fl, err := api.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]DocumentInfo, 0, len(fl.Files))
	for _, f := range fl.Files {
		if f.Type != dynalist.FileTypeDocument {
			continue
		}
		docs = append(docs, DocumentInfo{
			ID:         f.ID,
			Title:      f.Title,
			Permission: f.Permission,
			Link:       dynalist.BuildLink(cfg.DocBaseURL, f.ID, ""),
		})
	}
	return &ListDocumentsOutput{Documents: docs}, nil
}
