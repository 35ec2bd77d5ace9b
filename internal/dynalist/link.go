package dynalist

import (
	"fmt"
	"net/url"
	"strings"
)

// nodeFragmentPrefix marks the node anchor inside a deep-link fragment.
const nodeFragmentPrefix = "z="

// BuildLink returns the deep link for a document, optionally anchored at a
// node. An empty nodeID addresses the document as a whole.
func BuildLink(docBase, docID, nodeID string) string {
	link := strings.TrimRight(docBase, "/") + "/" + docID
	if nodeID != "" {
		link += "#" + nodeFragmentPrefix + nodeID
	}
	return link
}

// ParseLink extracts the document id and optional node id from a deep link.
// The node id is empty when the fragment is absent.
func ParseLink(link string) (docID, nodeID string, err error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", "", fmt.Errorf("parse link: %w", err)
	}
	path := strings.TrimRight(u.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		docID = path[i+1:]
	} else {
		docID = path
	}
	if docID == "" {
		return "", "", fmt.Errorf("link has no document id: %s", link)
	}
	if frag, found := strings.CutPrefix(u.Fragment, nodeFragmentPrefix); found {
		nodeID = frag
	}
	return docID, nodeID, nil
}
