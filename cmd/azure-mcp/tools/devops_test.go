package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevOpsToolsReportMissingPAT(t *testing.T) {
	handler := makeListProjectsHandler("https://dev.azure.com/my-org", "")

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.True(t, result.IsError)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.Contains(t, text.Text, "NOT_CONFIGURED")
	assert.Contains(t, text.Text, "AZURE_DEVOPS_PAT")
}
