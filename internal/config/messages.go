package config

// User-visible messages returned by tool handlers. The saved/edited strings
// are read by agents deciding their next step, so they stay stable.
const (
	// ErrSessionError is the format string for session binding errors
	ErrSessionError = "session error: %v"
	// MsgOutlineSaved is the format string confirming an outline write
	MsgOutlineSaved = "Outline saved to %s"
	// MsgDocumentSaved is the format string confirming a document write
	MsgDocumentSaved = "Document saved to %s"
	// MsgDocumentEdited is the format string confirming a document edit
	MsgDocumentEdited = "Document edited and saved to %s"
	// MsgEmptyWorkspace marks a listing of a workspace with no documents
	MsgEmptyWorkspace = "(empty)"
)
