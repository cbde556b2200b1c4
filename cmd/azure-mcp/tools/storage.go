package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
	azurestorage "github.com/lxman/mcp-cloudtools/service/azure/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterStorageTools registers blob storage tools.
// Only called when AZURE_STORAGE_ACCOUNT is configured.
func RegisterStorageTools(s *server.MCPServer, accountName string) {
	s.AddTool(
		mcp.NewTool("azure_storage_list_containers",
			mcp.WithDescription("List blob containers in the storage account"),
		),
		makeListContainersHandler(accountName),
	)

	s.AddTool(
		mcp.NewTool("azure_storage_list_blobs",
			mcp.WithDescription("List blobs in a container, optionally under a name prefix"),
			mcp.WithString("container", mcp.Required(), mcp.Description("Container name")),
			mcp.WithString("prefix", mcp.Description("Blob name prefix filter")),
			mcp.WithNumber("max_results", mcp.Description("Maximum blobs to return (default 100)")),
		),
		makeListBlobsHandler(accountName),
	)

	s.AddTool(
		mcp.NewTool("azure_storage_download_blob_text",
			mcp.WithDescription("Read a blob as text, truncated to a byte limit"),
			mcp.WithString("container", mcp.Required(), mcp.Description("Container name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Blob name")),
			mcp.WithNumber("max_bytes", mcp.Description("Maximum bytes to read (default 65536)")),
		),
		makeDownloadBlobHandler(accountName),
	)

	s.AddTool(
		mcp.NewTool("azure_storage_upload_blob_text",
			mcp.WithDescription("Write text content to a blob"),
			mcp.WithString("container", mcp.Required(), mcp.Description("Container name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Blob name")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Text content to store")),
		),
		makeUploadBlobHandler(accountName),
	)

	s.AddTool(
		mcp.NewTool("azure_storage_delete_blob",
			mcp.WithDescription("Delete a blob from a container"),
			mcp.WithString("container", mcp.Required(), mcp.Description("Container name")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Blob name")),
		),
		makeDeleteBlobHandler(accountName),
	)
}

func storageService(accountName string) (azurestorage.StorageService, error) {
	cfg, err := azureconfig.NewService("")
	if err != nil {
		return nil, err
	}
	return azurestorage.NewService(accountName, cfg.GetCredential())
}

func requireContainerAndBlob(request mcp.CallToolRequest) (string, string, *remediation.Classified) {
	container, err := request.RequireString("container")
	if err != nil {
		return "", "", remediation.MissingParameter("container", "blob container name")
	}
	name, err := request.RequireString("name")
	if err != nil {
		return "", "", remediation.MissingParameter("name", "blob name")
	}
	return container, name, nil
}

func makeListContainersHandler(accountName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := storageService(accountName)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		containers, err := svc.ListContainers(ctx)
		if err != nil {
			return response.Err("list containers", err), nil
		}
		return response.OK(containers), nil
	}
}

func makeListBlobsHandler(accountName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		container, err := request.RequireString("container")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("container", "blob container name")), nil
		}

		svc, err := storageService(accountName)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		blobs, err := svc.ListBlobs(ctx, container, request.GetString("prefix", ""), int32(request.GetInt("max_results", 100)))
		if err != nil {
			return response.Err("list blobs", err), nil
		}
		return response.OK(blobs), nil
	}
}

func makeDownloadBlobHandler(accountName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		container, name, perr := requireContainerAndBlob(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := storageService(accountName)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		content, err := svc.DownloadBlobText(ctx, container, name, int64(request.GetInt("max_bytes", 65536)))
		if err != nil {
			return response.Err("download blob", err), nil
		}
		return response.OK(content), nil
	}
}

func makeUploadBlobHandler(accountName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		container, name, perr := requireContainerAndBlob(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		content, err := request.RequireString("content")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("content", "text content to store")), nil
		}

		svc, err := storageService(accountName)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		if err := svc.UploadBlobText(ctx, container, name, content); err != nil {
			return response.Err("upload blob", err), nil
		}
		return response.OK(map[string]string{"container": container, "name": name}), nil
	}
}

func makeDeleteBlobHandler(accountName string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		container, name, perr := requireContainerAndBlob(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := storageService(accountName)
		if err != nil {
			return response.Err("configure Azure", err), nil
		}

		if err := svc.DeleteBlob(ctx, container, name); err != nil {
			return response.Err("delete blob", err), nil
		}
		return response.OK(map[string]string{"deleted": name, "container": container}), nil
	}
}
