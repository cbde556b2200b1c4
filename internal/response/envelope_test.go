package response

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestOKEnvelope(t *testing.T) {
	result := OK(map[string]string{"bucket": "reports"})

	assert.False(t, result.IsError)

	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "reports", env.Data["bucket"])
}

func TestOKWithNilData(t *testing.T) {
	result := OK(nil)

	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &env))
	assert.Equal(t, true, env["success"])
	assert.NotContains(t, env, "data")
}

func TestErrEnvelope(t *testing.T) {
	result := Err("list buckets", errors.New("connection refused"))

	assert.True(t, result.IsError)

	var env struct {
		Success bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNKNOWN_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Message, "list buckets")
	assert.Contains(t, env.Error.Message, "connection refused")
}

func TestEnvelopeIsValidJSON(t *testing.T) {
	result := OK([]string{"a", "b"})
	assert.True(t, json.Valid([]byte(resultText(t, result))))
}
