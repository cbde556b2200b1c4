package tools

import (
	"context"
	"testing"

	docindex "github.com/lxman/mcp-cloudtools/service/documents/index"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = "documents_search"
	req.Params.Arguments = args
	return req
}

func TestSearchRejectsOutOfRangeFuzziness(t *testing.T) {
	manager, err := docindex.NewManager(t.TempDir())
	require.NoError(t, err)
	defer manager.Close()

	handler := makeSearchHandler(manager)
	for _, fuzziness := range []int{-1, 3} {
		result, herr := handler(context.Background(), searchRequest(map[string]any{
			"name":      "notes",
			"query":     "pelican",
			"fuzziness": fuzziness,
		}))
		require.NoError(t, herr)
		require.True(t, result.IsError)

		text, ok := mcp.AsTextContent(result.Content[0])
		require.True(t, ok)
		assert.Contains(t, text.Text, "INVALID_REQUEST")
		assert.Contains(t, text.Text, "fuzziness")
	}
}
