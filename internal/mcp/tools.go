package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listDocumentsToolDef = mcp.NewTool("list_documents",
	mcp.WithDescription("List all outliner documents visible to the configured token, with permissions and deep links."),
)

var readOutlineToolDef = mcp.NewTool("read_outline",
	mcp.WithDescription("Read a document (or one subtree) as indented outline text. "+
		"Checkbox items render as '- [ ]'/'- [x]', headings as '#' prefixes."),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Document id (from list_documents or a deep link)")),
	mcp.WithString("node_id", mcp.Description("Optional node id or deep link; reads only that subtree and reports its ancestors")),
	mcp.WithNumber("max_depth", mcp.Description("Optional depth limit: 0 = immediate children only")),
	mcp.WithBoolean("include_notes", mcp.Description("Emit note lines beneath their nodes (default false)")),
	mcp.WithBoolean("include_checked", mcp.Description("Keep checked items and their subtrees (default true)")),
)

var insertOutlineToolDef = mcp.NewTool("insert_outline",
	mcp.WithDescription("Insert indented/bulleted text as new nodes under a parent. "+
		"Each top-level line becomes a direct child; deeper indentation nests. "+
		"Accepts '-', '*', numbered and quote markers; the indent unit is inferred."),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Target document id")),
	mcp.WithString("text", mcp.Required(), mcp.Description("Outline text to insert")),
	mcp.WithString("parent_id", mcp.Description("Parent node id; omit to attach at the document root")),
	mcp.WithBoolean("at_top", mcp.Description("Insert before existing children instead of appending")),
)

var editNodeToolDef = mcp.NewTool("edit_node",
	mcp.WithDescription("Overwrite a subset of one node's fields. Omitted fields are left alone."),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Document id")),
	mcp.WithString("node_id", mcp.Required(), mcp.Description("Node id or deep link")),
	mcp.WithString("content", mcp.Description("New single-line content")),
	mcp.WithString("note", mcp.Description("New note text (may span lines)")),
	mcp.WithBoolean("checked", mcp.Description("New checked state (only meaningful with a checkbox)")),
	mcp.WithBoolean("checkbox", mcp.Description("Whether the node has a checkbox")),
	mcp.WithNumber("heading", mcp.Description("Heading level 0-3 (0 = plain item)")),
	mcp.WithNumber("color", mcp.Description("Color label 0-6")),
)

var moveNodeToolDef = mcp.NewTool("move_node",
	mcp.WithDescription("Move a node to a new position: either under parent_id (optionally at index), "+
		"or relative to a sibling via before/after. Relative references must be in the same document."),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Document id")),
	mcp.WithString("node_id", mcp.Required(), mcp.Description("Node id or deep link to move")),
	mcp.WithString("parent_id", mcp.Description("Absolute mode: new parent id")),
	mcp.WithNumber("index", mcp.Description("Absolute mode: position under parent_id (-1 or omitted = append)")),
	mcp.WithString("before", mcp.Description("Relative mode: place immediately before this node id or link")),
	mcp.WithString("after", mcp.Description("Relative mode: place immediately after this node id or link")),
)

var deleteNodeToolDef = mcp.NewTool("delete_node",
	mcp.WithDescription("Delete a node and its entire subtree."),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Document id")),
	mcp.WithString("node_id", mcp.Required(), mcp.Description("Node id or deep link to delete")),
)

var captureInboxToolDef = mcp.NewTool("capture_inbox",
	mcp.WithDescription("Add one item to the inbox document. Use when no target document is known yet."),
	mcp.WithString("content", mcp.Required(), mcp.Description("Item content")),
	mcp.WithString("note", mcp.Description("Optional note")),
	mcp.WithBoolean("checkbox", mcp.Description("Give the item a checkbox")),
	mcp.WithBoolean("checked", mcp.Description("Initial checked state (requires checkbox)")),
	mcp.WithBoolean("at_top", mcp.Description("Insert at the first inbox position instead of appending")),
)

var recentNodesToolDef = mcp.NewTool("recent_nodes",
	mcp.WithDescription("List a document's most recently modified or created nodes, newest first."),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Document id")),
	mcp.WithString("by", mcp.Description("Ordering timestamp: \"modified\" (default) or \"created\"")),
	mcp.WithNumber("limit", mcp.Description("Maximum items to return (default 20, max 100)")),
)
