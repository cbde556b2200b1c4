package remediation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// classifyAzure maps *azcore.ResponseError by HTTP status and Azure
// error code. Returns nil when err is not an Azure SDK error.
func classifyAzure(action string, err error) *Classified {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return nil
	}

	msg := fmt.Sprintf("%s failed: %s (HTTP %d)", action, respErr.ErrorCode, respErr.StatusCode)

	switch respErr.StatusCode {
	case http.StatusUnauthorized:
		return &Classified{
			Code:    CodeAuthFailed,
			Message: msg,
			Hint:    "Azure rejected the credential.",
			Suggestions: []string{
				"Run 'az login' to refresh the Azure CLI credential",
				"If using a service principal, verify AZURE_CLIENT_ID, AZURE_TENANT_ID and AZURE_CLIENT_SECRET",
				"Confirm the credential belongs to the tenant that owns the subscription",
			},
			cause: err,
		}
	case http.StatusForbidden:
		return &Classified{
			Code:    CodeAccessDenied,
			Message: msg,
			Hint:    "The identity authenticated but lacks a role assignment for this operation.",
			Suggestions: []string{
				"Grant the identity an RBAC role on the target scope (e.g. Reader, Contributor)",
				"For Key Vault data-plane calls, check the vault's access policies or RBAC data-plane roles",
			},
			cause: err,
		}
	case http.StatusNotFound:
		return &Classified{
			Code:    CodeNotFound,
			Message: msg,
			Hint:    "The resource, resource group, or subscription path does not exist.",
			Suggestions: []string{
				"Use the matching list tool to see what exists",
				"Verify AZURE_SUBSCRIPTION_ID and the resource group name",
			},
			cause: err,
		}
	case http.StatusConflict:
		return &Classified{
			Code:    CodeConflict,
			Message: msg,
			Hint:    "The resource is in a state that rejects this operation (provisioning, being deleted, or name already taken). Wait for the current state to settle and retry.",
			cause:   err,
		}
	case http.StatusTooManyRequests:
		return &Classified{
			Code:    CodeThrottled,
			Message: msg,
			Hint:    "Azure is throttling this subscription or tenant. Back off and retry; the Retry-After response header gives the wait.",
			cause:   err,
		}
	case http.StatusBadRequest:
		return &Classified{
			Code:    CodeInvalidRequest,
			Message: msg,
			Hint:    "The request body or a parameter was rejected. The Azure error code above names the offending field.",
			cause:   err,
		}
	}

	return &Classified{
		Code:    CodeUnknown,
		Message: msg,
		Hint:    "An Azure API error that this server does not specifically recognize.",
		cause:   err,
	}
}
