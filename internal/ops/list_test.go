package ops

import (
	"context"
	"testing"

	"treeline/internal/dynalist"
)

func TestListDocumentsFiltersFolders(t *testing.T) {
	api := &fakeAPI{files: &dynalist.FileList{
		RootFileID: "rootfile",
		Files: []dynalist.File{
			{ID: "d1", Title: "Tasks", Type: dynalist.FileTypeDocument, Permission: 4},
			{ID: "f1", Title: "Archive", Type: dynalist.FileTypeFolder, Permission: 4},
			{ID: "d2", Title: "Notes", Type: dynalist.FileTypeDocument, Permission: 2},
		},
	}}

	out, err := ListDocuments(context.Background(), api, testCfg())
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(out.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(out.Documents))
	}
	if out.Documents[0].ID != "d1" || out.Documents[1].ID != "d2" {
		t.Errorf("documents = %+v", out.Documents)
	}
	if out.Documents[0].Link != "https://dynalist.io/d/d1" {
		t.Errorf("link = %q", out.Documents[0].Link)
	}
	if out.Documents[1].Permission != 2 {
		t.Errorf("permission = %d", out.Documents[1].Permission)
	}
}

func TestListDocumentsEmpty(t *testing.T) {
	out, err := ListDocuments(context.Background(), &fakeAPI{}, testCfg())
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(out.Documents) != 0 {
		t.Errorf("documents = %+v", out.Documents)
	}
}
