package dynalist

// Wire types for the document-service API. Every request is a POST with a
// JSON body carrying the secret token; every response carries a _code/_msg
// envelope with "Ok" on success.

// File kinds returned by file/list.
const (
	FileTypeDocument = "document"
	FileTypeFolder   = "folder"
)

// Change actions accepted by doc/edit.
const (
	ActionInsert = "insert"
	ActionEdit   = "edit"
	ActionMove   = "move"
	ActionDelete = "delete"
)

// IndexAppend is the insertion index meaning "append as the last child".
const IndexAppend = -1

// File is one entry from file/list: a document or a folder.
type File struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	// Permission: 0 none, 1 read, 2 edit, 3 manage, 4 owner.
	Permission int `json:"permission"`
}

// FileList is the result of file/list.
type FileList struct {
	RootFileID string
	Files      []File
}

// Change is one entry in a doc/edit batch. Action selects which fields are
// meaningful; pointer fields distinguish "leave alone" from "overwrite with
// zero" on edits.
type Change struct {
	Action string `json:"action"`

	// insert and move
	ParentID string `json:"parent_id,omitempty"`
	Index    *int   `json:"index,omitempty"`

	// edit, move, and delete
	NodeID string `json:"node_id,omitempty"`

	// insert and edit
	Content  *string `json:"content,omitempty"`
	Note     *string `json:"note,omitempty"`
	Checked  *bool   `json:"checked,omitempty"`
	Checkbox *bool   `json:"checkbox,omitempty"`
	Heading  *int    `json:"heading,omitempty"`
	Color    *int    `json:"color,omitempty"`
}

// InsertChange builds an insert entry under parentID at index.
func InsertChange(parentID string, index int, content string) Change {
	return Change{
		Action:   ActionInsert,
		ParentID: parentID,
		Index:    &index,
		Content:  &content,
	}
}

// MoveChange builds a move entry placing nodeID under parentID at index.
func MoveChange(nodeID, parentID string, index int) Change {
	return Change{
		Action:   ActionMove,
		NodeID:   nodeID,
		ParentID: parentID,
		Index:    &index,
	}
}

// DeleteChange builds a delete entry for nodeID.
func DeleteChange(nodeID string) Change {
	return Change{Action: ActionDelete, NodeID: nodeID}
}

// InboxAddRequest is the payload for inbox/add.
type InboxAddRequest struct {
	Content  string `json:"content"`
	Note     string `json:"note,omitempty"`
	Checkbox bool   `json:"checkbox,omitempty"`
	Checked  bool   `json:"checked,omitempty"`
	Index    int    `json:"index"`
}

// InboxAddResult identifies the implicit inbox document and the new node.
type InboxAddResult struct {
	FileID string
	NodeID string
	Index  int
}

// envelope is the status header every response carries.
type envelope struct {
	Code string `json:"_code"`
	Msg  string `json:"_msg"`
}

type fileListRequest struct {
	Token string `json:"token"`
}

type fileListResponse struct {
	envelope
	RootFileID string `json:"root_file_id"`
	Files      []File `json:"files"`
}

type docReadRequest struct {
	Token  string `json:"token"`
	FileID string `json:"file_id"`
}

type docReadResponse struct {
	envelope
	Title   string     `json:"title"`
	Version int        `json:"version"`
	Nodes   []wireNode `json:"nodes"`
}

// wireNode is the node shape doc/read returns.
type wireNode struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Note     string   `json:"note"`
	Children []string `json:"children"`
	Checked  bool     `json:"checked"`
	Checkbox bool     `json:"checkbox"`
	Heading  int      `json:"heading"`
	Color    int      `json:"color"`
	Created  int64    `json:"created"`
	Modified int64    `json:"modified"`
}

type docEditRequest struct {
	Token   string   `json:"token"`
	FileID  string   `json:"file_id"`
	Changes []Change `json:"changes"`
}

type docEditResponse struct {
	envelope
	NewNodeIDs []string `json:"new_node_ids"`
}

type inboxAddRequest struct {
	Token    string `json:"token"`
	Index    int    `json:"index"`
	Content  string `json:"content"`
	Note     string `json:"note,omitempty"`
	Checkbox bool   `json:"checkbox,omitempty"`
	Checked  bool   `json:"checked,omitempty"`
}

type inboxAddResponse struct {
	envelope
	FileID string `json:"file_id"`
	NodeID string `json:"node_id"`
	Index  int    `json:"index"`
}
