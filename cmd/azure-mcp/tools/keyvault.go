package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azurekeyvault "github.com/lxman/mcp-cloudtools/service/azure/keyvault"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterKeyVaultTools registers Key Vault secret tools.
// Only called when AZURE_KEYVAULT_URL is configured.
func RegisterKeyVaultTools(s *server.MCPServer, vaultURL string) {
	s.AddTool(
		mcp.NewTool("azure_keyvault_list_secrets",
			mcp.WithDescription("List secret names and metadata in the vault, never the values"),
		),
		makeListSecretsHandler(vaultURL),
	)

	s.AddTool(
		mcp.NewTool("azure_keyvault_get_secret",
			mcp.WithDescription("Get the current value of a secret from the vault"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Secret name")),
		),
		makeGetSecretHandler(vaultURL),
	)

	s.AddTool(
		mcp.NewTool("azure_keyvault_set_secret",
			mcp.WithDescription("Create or update a secret in the vault"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Secret name")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Secret value")),
		),
		makeSetSecretHandler(vaultURL),
	)

	s.AddTool(
		mcp.NewTool("azure_keyvault_delete_secret",
			mcp.WithDescription("Delete a secret from the vault"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Secret name")),
		),
		makeDeleteSecretHandler(vaultURL),
	)
}

func keyVaultService(vaultURL string) (azurekeyvault.KeyVaultService, error) {
	cfg, err := azureconfig.NewService("")
	if err != nil {
		return nil, err
	}
	return azurekeyvault.NewService(vaultURL, cfg.GetCredential())
}

func makeListSecretsHandler(vaultURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := keyVaultService(vaultURL)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		secrets, err := svc.ListSecrets(ctx)
		if err != nil {
			return response.Err("list secrets", err), nil
		}
		return response.OK(secrets), nil
	}
}

func makeGetSecretHandler(vaultURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("name", "secret name")), nil
		}

		svc, err := keyVaultService(vaultURL)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		secret, err := svc.GetSecret(ctx, name)
		if err != nil {
			return response.Err("get secret", err), nil
		}
		return response.OK(secret), nil
	}
}

func makeSetSecretHandler(vaultURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("name", "secret name")), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("value", "secret value")), nil
		}

		svc, err := keyVaultService(vaultURL)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		summary, err := svc.SetSecret(ctx, name, value)
		if err != nil {
			return response.Err("set secret", err), nil
		}
		return response.OK(summary), nil
	}
}

func makeDeleteSecretHandler(vaultURL string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("name", "secret name")), nil
		}

		svc, err := keyVaultService(vaultURL)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		if err := svc.DeleteSecret(ctx, name); err != nil {
			return response.Err("delete secret", err), nil
		}
		return response.OK(map[string]string{"deleted": name}), nil
	}
}
