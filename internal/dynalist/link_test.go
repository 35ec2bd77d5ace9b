package dynalist

import "testing"

func TestBuildLink(t *testing.T) {
	tests := []struct {
		name    string
		docBase string
		docID   string
		nodeID  string
		want    string
	}{
		{"document only", "https://dynalist.io/d", "abc123", "", "https://dynalist.io/d/abc123"},
		{"with node", "https://dynalist.io/d", "abc123", "n9", "https://dynalist.io/d/abc123#z=n9"},
		{"trailing slash trimmed", "https://dynalist.io/d/", "abc123", "", "https://dynalist.io/d/abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildLink(tt.docBase, tt.docID, tt.nodeID); got != tt.want {
				t.Errorf("BuildLink = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		link    string
		docID   string
		nodeID  string
		wantErr bool
	}{
		{"https://dynalist.io/d/abc123#z=n9", "abc123", "n9", false},
		{"https://dynalist.io/d/abc123", "abc123", "", false},
		{"https://dynalist.io/d/abc123#other", "abc123", "", false},
		{"https://dynalist.io/d/abc123/", "abc123", "", false},
		{"https://dynalist.io/", "", "", true},
	}
	for _, tt := range tests {
		docID, nodeID, err := ParseLink(tt.link)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLink(%q): expected error", tt.link)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLink(%q): %v", tt.link, err)
			continue
		}
		if docID != tt.docID || nodeID != tt.nodeID {
			t.Errorf("ParseLink(%q) = (%q, %q), want (%q, %q)",
				tt.link, docID, nodeID, tt.docID, tt.nodeID)
		}
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	link := BuildLink("https://dynalist.io/d", "doc42", "node7")
	docID, nodeID, err := ParseLink(link)
	if err != nil {
		t.Fatalf("ParseLink: %v", err)
	}
	if docID != "doc42" || nodeID != "node7" {
		t.Errorf("round trip = (%q, %q)", docID, nodeID)
	}
}
