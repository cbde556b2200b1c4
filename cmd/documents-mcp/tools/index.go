package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	docindex "github.com/lxman/mcp-cloudtools/service/documents/index"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterIndexTools registers full-text index tools backed by the
// shared index manager
func RegisterIndexTools(s *server.MCPServer, manager docindex.ManagerService) {
	s.AddTool(
		mcp.NewTool("documents_build_index",
			mcp.WithDescription("Build a full-text index from the text documents under a directory"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
			mcp.WithString("source_dir", mcp.Required(), mcp.Description("Directory to index recursively")),
		),
		makeBuildIndexHandler(manager),
	)

	s.AddTool(
		mcp.NewTool("documents_load_index",
			mcp.WithDescription("Load an existing index into memory for searching"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
		),
		makeLoadIndexHandler(manager),
	)

	s.AddTool(
		mcp.NewTool("documents_unload_index",
			mcp.WithDescription("Unload an index from memory, keeping it on disk"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
		),
		makeUnloadIndexHandler(manager),
	)

	s.AddTool(
		mcp.NewTool("documents_list_indexes",
			mcp.WithDescription("List indexes on disk with load state, size and the document count of each loaded index"),
		),
		makeListIndexesHandler(manager),
	)

	s.AddTool(
		mcp.NewTool("documents_delete_index",
			mcp.WithDescription("Delete an index from disk"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
		),
		makeDeleteIndexHandler(manager),
	)

	s.AddTool(
		mcp.NewTool("documents_search",
			mcp.WithDescription("Search a loaded index with fuzzy matching and highlighted snippets"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query text")),
			mcp.WithNumber("fuzziness", mcp.Description("Edit distance for fuzzy matching, 0-2 (default 1)")),
			mcp.WithNumber("limit", mcp.Description("Maximum hits to return (default 10)")),
		),
		makeSearchHandler(manager),
	)

	s.AddTool(
		mcp.NewTool("documents_index_document",
			mcp.WithDescription("Add or update a single document in a loaded index"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
			mcp.WithString("path", mcp.Required(), mcp.Description("Document path used as its identifier")),
			mcp.WithString("body", mcp.Required(), mcp.Description("Document text content")),
		),
		makeIndexDocumentHandler(manager),
	)
}

func requireIndexName(request mcp.CallToolRequest) (string, *remediation.Classified) {
	name, err := request.RequireString("name")
	if err != nil {
		return "", remediation.MissingParameter("name", "index name")
	}
	return name, nil
}

func makeBuildIndexHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, perr := requireIndexName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		sourceDir, err := request.RequireString("source_dir")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("source_dir", "directory to index")), nil
		}

		result, err := manager.Build(ctx, name, sourceDir)
		if err != nil {
			return response.Err("build index", err), nil
		}
		return response.OK(result), nil
	}
}

func makeLoadIndexHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, perr := requireIndexName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		info, err := manager.Load(name)
		if err != nil {
			return response.Err("load index", err), nil
		}
		return response.OK(info), nil
	}
}

func makeUnloadIndexHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, perr := requireIndexName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		if err := manager.Unload(name); err != nil {
			return response.Err("unload index", err), nil
		}
		return response.OK(map[string]string{"unloaded": name}), nil
	}
}

func makeListIndexesHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		infos, err := manager.List()
		if err != nil {
			return response.Err("list indexes", err), nil
		}
		return response.OK(infos), nil
	}
}

func makeDeleteIndexHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, perr := requireIndexName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		if err := manager.Delete(name); err != nil {
			return response.Err("delete index", err), nil
		}
		return response.OK(map[string]string{"deleted": name}), nil
	}
}

func makeSearchHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, perr := requireIndexName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		query, err := request.RequireString("query")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("query", "search query text")), nil
		}

		fuzziness := request.GetInt("fuzziness", 1)
		if fuzziness < 0 || fuzziness > 2 {
			return response.Err("read parameters", remediation.InvalidParameter("fuzziness", fuzziness, "an edit distance between 0 and 2")), nil
		}

		result, err := manager.Search(ctx, name, query, fuzziness, request.GetInt("limit", 10))
		if err != nil {
			return response.Err("search index", err), nil
		}
		return response.OK(result), nil
	}
}

func makeIndexDocumentHandler(manager docindex.ManagerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, perr := requireIndexName(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		path, err := request.RequireString("path")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("path", "document path identifier")), nil
		}
		body, err := request.RequireString("body")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("body", "document text content")), nil
		}

		if err := manager.IndexDocument(name, docindex.Document{Path: path, Name: path, Body: body}); err != nil {
			return response.Err("index document", err), nil
		}
		return response.OK(map[string]string{"indexed": path, "index": name}), nil
	}
}
