// Package response renders tool results as a uniform JSON envelope.
// Every tool in this repository returns either {"success": true,
// "data": ...} or {"success": false, "error": {...}} so callers can
// branch on a single field.
package response

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
)

// Envelope is the wire shape of every tool result.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    any                     `json:"data,omitempty"`
	Error   *remediation.Classified `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) *mcp.CallToolResult {
	return render(Envelope{Success: true, Data: data})
}

// Err classifies err and wraps it in a failure envelope. action names
// the operation for the error message ("list S3 buckets").
func Err(action string, err error) *mcp.CallToolResult {
	return render(Envelope{Success: false, Error: remediation.Classify(action, err)})
}

func render(env Envelope) *mcp.CallToolResult {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		// Data was not serializable; still answer in envelope form.
		return mcp.NewToolResultText(fmt.Sprintf(`{"success": false, "error": {"code": "UNKNOWN_ERROR", "message": %q}}`, err.Error()))
	}
	if env.Error != nil {
		result := mcp.NewToolResultText(string(data))
		result.IsError = true
		return result
	}
	return mcp.NewToolResultText(string(data))
}
