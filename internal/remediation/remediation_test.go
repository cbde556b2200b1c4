package remediation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAWSErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected Code
	}{
		{name: "expired token", code: "ExpiredToken", expected: CodeAuthFailed},
		{name: "invalid client token", code: "InvalidClientTokenId", expected: CodeAuthFailed},
		{name: "access denied", code: "AccessDeniedException", expected: CodeAccessDenied},
		{name: "throttling", code: "Throttling", expected: CodeThrottled},
		{name: "missing bucket", code: "NoSuchBucket", expected: CodeNotFound},
		{name: "missing cluster", code: "ClusterNotFoundException", expected: CodeNotFound},
		{name: "suffix not found", code: "ResourceNotFoundException", expected: CodeNotFound},
		{name: "validation", code: "ValidationError", expected: CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &smithy.GenericAPIError{Code: tt.code, Message: "boom"}
			classified := Classify("list things", err)

			require.NotNil(t, classified)
			assert.Equal(t, tt.expected, classified.Code)
			assert.Contains(t, classified.Message, "list things")
		})
	}
}

func TestClassifyAzureErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   Code
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, expected: CodeAuthFailed},
		{name: "forbidden", statusCode: http.StatusForbidden, expected: CodeAccessDenied},
		{name: "not found", statusCode: http.StatusNotFound, expected: CodeNotFound},
		{name: "conflict", statusCode: http.StatusConflict, expected: CodeConflict},
		{name: "throttled", statusCode: http.StatusTooManyRequests, expected: CodeThrottled},
		{name: "bad request", statusCode: http.StatusBadRequest, expected: CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &azcore.ResponseError{StatusCode: tt.statusCode, ErrorCode: "SomeCode"}
			classified := Classify("get resource", err)

			require.NotNil(t, classified)
			assert.Equal(t, tt.expected, classified.Code)
		})
	}
}

func TestClassifyContextErrors(t *testing.T) {
	classified := Classify("slow call", context.DeadlineExceeded)
	require.NotNil(t, classified)
	assert.Equal(t, CodeTimeout, classified.Code)

	classified = Classify("cancelled call", context.Canceled)
	require.NotNil(t, classified)
	assert.Equal(t, CodeTimeout, classified.Code)
}

func TestClassifyPassesThroughClassified(t *testing.T) {
	original := MissingParameter("bucket", "S3 bucket name")
	classified := Classify("read parameters", original)

	assert.Equal(t, CodeMissingParameter, classified.Code)
	assert.Contains(t, classified.Message, "bucket")
}

func TestClassifyWrappedError(t *testing.T) {
	inner := &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "nope"}
	wrapped := fmt.Errorf("while listing: %w", inner)

	classified := Classify("list buckets", wrapped)
	require.NotNil(t, classified)
	assert.Equal(t, CodeAccessDenied, classified.Code)
}

func TestClassifyUnknownError(t *testing.T) {
	classified := Classify("do thing", errors.New("something odd"))

	require.NotNil(t, classified)
	assert.Equal(t, CodeUnknown, classified.Code)
	assert.Contains(t, classified.Message, "something odd")
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify("anything", nil))
}

func TestClassifiedUnwrap(t *testing.T) {
	inner := &smithy.GenericAPIError{Code: "Throttling", Message: "slow down"}
	classified := Classify("call API", inner)

	var apiErr smithy.APIError
	assert.True(t, errors.As(classified, &apiErr))
}

func TestNotConfigured(t *testing.T) {
	classified := NotConfigured("QuickSight", "AWS_ACCOUNT_ID")

	assert.Equal(t, CodeNotConfigured, classified.Code)
	assert.Contains(t, classified.Hint, "AWS_ACCOUNT_ID")
}

func TestInvalidParameter(t *testing.T) {
	classified := InvalidParameter("fuzziness", "9", "an integer between 0 and 2")

	assert.Equal(t, CodeInvalidRequest, classified.Code)
	assert.Contains(t, classified.Message, "fuzziness")
	assert.Contains(t, classified.Hint, "between 0 and 2")
}
