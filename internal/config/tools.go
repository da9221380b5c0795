package config

// Tool names exposed by the workspace server
const (
	// ToolDocOutline is the outline creation tool name
	ToolDocOutline = "doc.outline"
	// ToolDocWrite is the document creation tool name
	ToolDocWrite = "doc.write"
	// ToolDocEdit is the document edit tool name
	ToolDocEdit = "doc.edit"
	// ToolDocRead is the document read tool name
	ToolDocRead = "doc.read"
	// ToolWsList is the workspace listing tool name
	ToolWsList = "ws.list"
	// ToolWsSnapshot is the workspace snapshot tool name
	ToolWsSnapshot = "ws.snapshot"
)

// AllTools returns a slice of all available tool names
func AllTools() []string {
	return []string{
		ToolDocOutline,
		ToolDocWrite,
		ToolDocEdit,
		ToolDocRead,
		ToolWsList,
		ToolWsSnapshot,
	}
}
