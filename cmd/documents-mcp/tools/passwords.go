package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	docpasswords "github.com/lxman/mcp-cloudtools/service/documents/passwords"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterPasswordTools registers encrypted vault tools. The vault is
// opened once per process so concurrent writes serialize on its lock;
// its passphrase comes from DOCUMENTS_VAULT_KEY, never from tool
// parameters, so only called when that variable is set.
func RegisterPasswordTools(s *server.MCPServer, vault docpasswords.VaultService) {
	s.AddTool(
		mcp.NewTool("documents_password_set",
			mcp.WithDescription("Store or replace the password for a document in the encrypted vault"),
			mcp.WithString("document", mcp.Required(), mcp.Description("Document path the password belongs to")),
			mcp.WithString("password", mcp.Required(), mcp.Description("Password to store")),
			mcp.WithString("notes", mcp.Description("Free-form notes stored alongside the password")),
		),
		makeSetPasswordHandler(vault),
	)

	s.AddTool(
		mcp.NewTool("documents_password_get",
			mcp.WithDescription("Get the stored password and notes for a document"),
			mcp.WithString("document", mcp.Required(), mcp.Description("Document path")),
		),
		makeGetPasswordHandler(vault),
	)

	s.AddTool(
		mcp.NewTool("documents_password_list",
			mcp.WithDescription("List documents that have stored passwords, without the passwords themselves"),
		),
		makeListPasswordsHandler(vault),
	)

	s.AddTool(
		mcp.NewTool("documents_password_delete",
			mcp.WithDescription("Delete the stored password for a document"),
			mcp.WithString("document", mcp.Required(), mcp.Description("Document path")),
		),
		makeDeletePasswordHandler(vault),
	)
}

func requireDocument(request mcp.CallToolRequest) (string, *remediation.Classified) {
	document, err := request.RequireString("document")
	if err != nil {
		return "", remediation.MissingParameter("document", "document path")
	}
	return document, nil
}

func makeSetPasswordHandler(vault docpasswords.VaultService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document, perr := requireDocument(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		password, err := request.RequireString("password")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("password", "password to store")), nil
		}

		if err := vault.Set(document, password, request.GetString("notes", "")); err != nil {
			return response.Err("store password", err), nil
		}
		return response.OK(map[string]string{"stored": document}), nil
	}
}

func makeGetPasswordHandler(vault docpasswords.VaultService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document, perr := requireDocument(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		entry, err := vault.Get(document)
		if err != nil {
			return response.Err("get password", err), nil
		}
		return response.OK(entry), nil
	}
}

func makeListPasswordsHandler(vault docpasswords.VaultService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := vault.List()
		if err != nil {
			return response.Err("list passwords", err), nil
		}
		return response.OK(summaries), nil
	}
}

func makeDeletePasswordHandler(vault docpasswords.VaultService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		document, perr := requireDocument(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		if err := vault.Delete(document); err != nil {
			return response.Err("delete password", err), nil
		}
		return response.OK(map[string]string{"deleted": document}), nil
	}
}
