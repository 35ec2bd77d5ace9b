package errors

import "fmt"

// ErrorCode represents a treeline error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"    // 401
	ErrNodeNotFound   ErrorCode = "NODE_NOT_FOUND"  // 404
	ErrNoParent       ErrorCode = "NO_PARENT"       // 422
	ErrCrossDocument  ErrorCode = "CROSS_DOCUMENT"  // 422
	ErrRemoteRejected ErrorCode = "REMOTE_REJECTED" // 502
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// TreelineError represents a structured error with code, status, and details.
type TreelineError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TreelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TreelineError {
	return &TreelineError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnauthorized creates a 401 error for a rejected or missing API token.
func NewUnauthorized(msg string) *TreelineError {
	if msg == "" {
		msg = "the document service rejected the API token"
	}
	return &TreelineError{
		Code:    ErrUnauthorized,
		Status:  401,
		Message: msg,
	}
}

// NewNodeNotFound creates a 404 error for a node id absent from the fetched
// document.
func NewNodeNotFound(id string) *TreelineError {
	return &TreelineError{
		Code:    ErrNodeNotFound,
		Status:  404,
		Message: fmt.Sprintf("node not found in document: %s", id),
		Details: map[string]any{"node_id": id},
	}
}

// NewNoParent creates a 422 error for a positioning operation whose reference
// node has no discoverable parent (it is the document root).
func NewNoParent(id string) *TreelineError {
	return &TreelineError{
		Code:    ErrNoParent,
		Status:  422,
		Message: fmt.Sprintf("node has no parent (is it the document root?): %s", id),
		Details: map[string]any{"node_id": id},
	}
}

// NewCrossDocument creates a 422 error for a relative operation whose
// endpoints resolve to different documents. Rejected before any mutation.
func NewCrossDocument(docID, otherDocID string) *TreelineError {
	return &TreelineError{
		Code:    ErrCrossDocument,
		Status:  422,
		Message: fmt.Sprintf("reference points into a different document: %s vs %s", docID, otherDocID),
		Details: map[string]any{"document_id": docID, "other_document_id": otherDocID},
	}
}

// NewRemoteRejected creates a 502 error for a read or mutation the document
// service refused. The remote code is preserved in the details.
func NewRemoteRejected(remoteCode, msg string) *TreelineError {
	if msg == "" {
		msg = "the document service rejected the request"
	}
	return &TreelineError{
		Code:    ErrRemoteRejected,
		Status:  502,
		Message: msg,
		Details: map[string]any{"remote_code": remoteCode},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TreelineError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TreelineError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TreelineError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TreelineError); ok {
		return tErr.Code == code
	}
	return false
}
