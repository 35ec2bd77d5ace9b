package ops

import (
	"context"
	"fmt"
	"testing"

	"treeline/internal/config"
	"treeline/internal/dynalist"
	"treeline/internal/errors"
	"treeline/internal/outline"
)

// editCall records one EditDocument invocation.
type editCall struct {
	DocID   string
	Changes []dynalist.Change
}

// fakeAPI is an in-memory stand-in for the document-service client. It mints
// sequential ids for inserts and records every edit batch it receives.
type fakeAPI struct {
	files *dynalist.FileList
	docs  map[string]*outline.Document

	editCalls []editCall
	// failAtCall makes the n-th EditDocument call (1-based) return editErr.
	failAtCall int
	editErr    error
	// idsOverride replaces the minted ids of the next EditDocument call.
	idsOverride []string

	inboxReq *dynalist.InboxAddRequest
	inboxRes *dynalist.InboxAddResult

	// apply makes EditDocument mutate the stored document so later reads see
	// the effects, like the real service.
	apply bool

	nextID int
}

func (f *fakeAPI) ListFiles(ctx context.Context) (*dynalist.FileList, error) {
	if f.files == nil {
		return &dynalist.FileList{}, nil
	}
	return f.files, nil
}

func (f *fakeAPI) ReadDocument(ctx context.Context, fileID string) (*outline.Document, error) {
	doc, ok := f.docs[fileID]
	if !ok {
		return nil, errors.NewRemoteRejected("NotFound", "no such document: "+fileID)
	}
	return doc, nil
}

func (f *fakeAPI) EditDocument(ctx context.Context, fileID string, changes []dynalist.Change) ([]string, error) {
	f.editCalls = append(f.editCalls, editCall{DocID: fileID, Changes: changes})
	if f.failAtCall > 0 && len(f.editCalls) == f.failAtCall {
		return nil, f.editErr
	}
	if f.idsOverride != nil {
		ids := f.idsOverride
		f.idsOverride = nil
		return ids, nil
	}
	var ids []string
	for _, ch := range changes {
		if ch.Action == dynalist.ActionInsert {
			f.nextID++
			id := fmt.Sprintf("nid%d", f.nextID)
			ids = append(ids, id)
			if f.apply {
				f.applyInsert(fileID, ch, id)
			}
		} else if f.apply {
			f.applyChange(fileID, ch)
		}
	}
	return ids, nil
}

func (f *fakeAPI) applyInsert(fileID string, ch dynalist.Change, id string) {
	doc := f.docs[fileID]
	doc.Nodes = append(doc.Nodes, outline.Node{ID: id, Content: *ch.Content})
	byID := outline.Index(doc.Nodes)
	parent := byID[ch.ParentID]
	parent.Children = insertAt(parent.Children, *ch.Index, id)
}

func (f *fakeAPI) applyChange(fileID string, ch dynalist.Change) {
	doc := f.docs[fileID]
	byID := outline.Index(doc.Nodes)
	switch ch.Action {
	case dynalist.ActionEdit:
		n := byID[ch.NodeID]
		if ch.Content != nil {
			n.Content = *ch.Content
		}
		if ch.Note != nil {
			n.Note = *ch.Note
		}
		if ch.Checked != nil {
			n.Checked = *ch.Checked
		}
	case dynalist.ActionMove:
		if ref, ok := outline.FindParent(doc.Nodes, ch.NodeID); ok {
			old := byID[ref.ParentID]
			old.Children = append(old.Children[:ref.Index], old.Children[ref.Index+1:]...)
		}
		parent := byID[ch.ParentID]
		parent.Children = insertAt(parent.Children, *ch.Index, ch.NodeID)
	case dynalist.ActionDelete:
		if ref, ok := outline.FindParent(doc.Nodes, ch.NodeID); ok {
			parent := byID[ref.ParentID]
			parent.Children = append(parent.Children[:ref.Index], parent.Children[ref.Index+1:]...)
		}
		kept := doc.Nodes[:0]
		for _, n := range doc.Nodes {
			if n.ID != ch.NodeID {
				kept = append(kept, n)
			}
		}
		doc.Nodes = kept
	}
}

func insertAt(children []string, index int, id string) []string {
	if index < 0 || index > len(children) {
		return append(children, id)
	}
	children = append(children, "")
	copy(children[index+1:], children[index:])
	children[index] = id
	return children
}

func (f *fakeAPI) AddToInbox(ctx context.Context, req dynalist.InboxAddRequest) (*dynalist.InboxAddResult, error) {
	f.inboxReq = &req
	if f.inboxRes == nil {
		return &dynalist.InboxAddResult{FileID: "inboxdoc", NodeID: "inboxnode", Index: 0}, nil
	}
	return f.inboxRes, nil
}

func testCfg() *config.Config {
	return &config.Config{
		DocBaseURL:  "https://dynalist.io/d",
		IndentWidth: 4,
	}
}

func wantCode(t *testing.T, err error, code errors.ErrorCode) *errors.TreelineError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	tErr, ok := err.(*errors.TreelineError)
	if !ok {
		t.Fatalf("expected *TreelineError, got %T: %v", err, err)
	}
	if tErr.Code != code {
		t.Fatalf("error code = %s, want %s", tErr.Code, code)
	}
	return tErr
}
