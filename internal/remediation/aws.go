package remediation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// classifyAWS maps smithy API errors by error code. Returns nil when
// err is not an AWS SDK error.
func classifyAWS(action string, err error) *Classified {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	code := apiErr.ErrorCode()
	msg := fmt.Sprintf("%s failed: %s: %s", action, code, apiErr.ErrorMessage())

	switch code {
	case "ExpiredToken", "ExpiredTokenException", "InvalidClientTokenId", "UnrecognizedClientException":
		return &Classified{
			Code:    CodeAuthFailed,
			Message: msg,
			Hint:    "The AWS credentials are missing, expired, or invalid.",
			Suggestions: []string{
				"Run 'aws sso login' or refresh the session if using temporary credentials",
				"Verify AWS_PROFILE points at a profile that exists in ~/.aws/config",
				"Check AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY if using static keys",
			},
			cause: err,
		}
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation", "AuthorizationError":
		return &Classified{
			Code:    CodeAccessDenied,
			Message: msg,
			Hint:    "The credentials are valid but lack permission for this call.",
			Suggestions: []string{
				"Attach an IAM policy granting the action named in the error",
				"Confirm the call targets the intended account and region",
			},
			cause: err,
		}
	case "Throttling", "ThrottlingException", "TooManyRequestsException", "RequestLimitExceeded":
		return &Classified{
			Code:    CodeThrottled,
			Message: msg,
			Hint:    "AWS is rate limiting this caller. Wait a few seconds and retry, or reduce call frequency.",
			cause:   err,
		}
	case "ValidationError", "ValidationException", "InvalidParameterValue", "InvalidParameterException", "InvalidParameterCombination":
		return &Classified{
			Code:    CodeInvalidRequest,
			Message: msg,
			Hint:    "One of the request parameters was rejected. Check names, ARNs, and value ranges against the error message.",
			cause:   err,
		}
	}

	if isAWSNotFound(code) {
		return &Classified{
			Code:    CodeNotFound,
			Message: msg,
			Hint:    "The named resource does not exist in this account/region.",
			Suggestions: []string{
				"Use the matching list tool to see what exists",
				"Check AWS_REGION: the resource may live in a different region",
				"Verify the exact spelling of the resource name or ARN",
			},
			cause: err,
		}
	}

	return &Classified{
		Code:    CodeUnknown,
		Message: msg,
		Hint:    "An AWS API error that this server does not specifically recognize. The error code above is the AWS-side category.",
		cause:   err,
	}
}

// isAWSNotFound covers the per-service spellings of "does not exist".
func isAWSNotFound(code string) bool {
	switch code {
	case "NoSuchBucket", "NoSuchKey", "NotFoundException",
		"ClusterNotFoundException", "ServiceNotFoundException",
		"RepositoryNotFoundException", "ImageNotFoundException",
		"ScanNotFoundException", "ResourceNotFoundException":
		return true
	}
	return strings.HasSuffix(code, "NotFound") || strings.HasSuffix(code, "NotFoundException")
}
