package web

import (
	"net/http"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/ops"
	"treeline/internal/outline"
)

// Handlers holds dependencies for the web UI handlers.
type Handlers struct {
	api      ops.API
	cfg      *config.Config
	renderer *Renderer
}

// HandleDocuments renders the document list page.
func (h *Handlers) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ListDocuments(r.Context(), h.api, h.cfg)
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	h.renderer.renderPage(w, "documents", DocumentsPageData{
		PageData:  PageData{Title: "Documents", Version: h.renderer.version},
		Documents: result.Documents,
	})
}

// HandleDocument renders one document as a nested outline.
func (h *Handlers) HandleDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, errors.NewInvalidRequest("document id is required"))
		return
	}

	doc, err := h.api.ReadDocument(r.Context(), id)
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	h.renderer.renderPage(w, "document", DocumentPageData{
		PageData:   PageData{Title: doc.Title, Version: h.renderer.version},
		DocumentID: id,
		Link:       dynalist.BuildLink(h.cfg.DocBaseURL, id, ""),
		Items:      flattenOutline(doc.Nodes),
	})
}

// flattenOutline walks the document pre-order and produces one display item
// per node, depth attached. The synthetic root is skipped; a seen set guards
// against cycles the same way Descendants does.
func flattenOutline(nodes []outline.Node) []OutlineItem {
	byID := outline.Index(nodes)
	root, ok := byID[outline.FindRoot(nodes)]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var items []OutlineItem
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		if seen[id] {
			return
		}
		seen[id] = true
		n, ok := byID[id]
		if !ok {
			return
		}
		item := OutlineItem{
			ID:       n.ID,
			Depth:    depth,
			Content:  n.Content,
			Checkbox: n.Checkbox,
			Checked:  n.Checked,
			Heading:  n.Heading,
			Color:    n.Color,
		}
		if n.Note != "" {
			item.NoteHTML = renderMarkdown(n.Note)
		}
		items = append(items, item)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, c := range root.Children {
		walk(c, 0)
	}
	return items
}
