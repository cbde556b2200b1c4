package tools

import (
	"context"
	"path/filepath"
	"time"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	docindex "github.com/lxman/mcp-cloudtools/service/documents/index"
	dococr "github.com/lxman/mcp-cloudtools/service/documents/ocr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterOCRTools registers Tesseract text extraction tools. The
// index manager lets extracted text flow straight into a loaded index.
func RegisterOCRTools(s *server.MCPServer, manager docindex.ManagerService, defaultLanguage string) {
	s.AddTool(
		mcp.NewTool("documents_ocr_extract",
			mcp.WithDescription("Extract text from an image file using OCR, optionally indexing the result"),
			mcp.WithString("image_path", mcp.Required(), mcp.Description("Path to the image file")),
			mcp.WithString("language", mcp.Description("Tesseract language code (default from server config, usually eng)")),
			mcp.WithString("whitelist", mcp.Description("Restrict recognition to these characters, e.g. 0123456789")),
			mcp.WithString("index_name", mcp.Description("Index to store the extracted text in")),
		),
		makeExtractTextHandler(manager, defaultLanguage),
	)

	s.AddTool(
		mcp.NewTool("documents_ocr_extract_directory",
			mcp.WithDescription("Extract text from every image in a directory, optionally indexing the results"),
			mcp.WithString("dir", mcp.Required(), mcp.Description("Directory containing images")),
			mcp.WithString("language", mcp.Description("Tesseract language code (default from server config, usually eng)")),
			mcp.WithString("index_name", mcp.Description("Index to store the extracted texts in")),
		),
		makeExtractDirectoryHandler(manager, defaultLanguage),
	)
}

func indexExtracted(manager docindex.ManagerService, indexName string, result dococr.ExtractResult) error {
	return manager.IndexDocument(indexName, docindex.Document{
		Path:     result.ImagePath,
		Name:     filepath.Base(result.ImagePath),
		Body:     result.Text,
		Modified: time.Now().UTC(),
		Size:     int64(result.Chars),
	})
}

func makeExtractTextHandler(manager docindex.ManagerService, defaultLanguage string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		imagePath, err := request.RequireString("image_path")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("image_path", "path to an image file")), nil
		}

		svc := dococr.NewService(defaultLanguage)
		result, err := svc.ExtractText(ctx, dococr.ExtractRequest{
			ImagePath: imagePath,
			Language:  request.GetString("language", ""),
			Whitelist: request.GetString("whitelist", ""),
		})
		if err != nil {
			return response.Err("extract text", err), nil
		}

		if indexName := request.GetString("index_name", ""); indexName != "" {
			if err := indexExtracted(manager, indexName, *result); err != nil {
				return response.Err("index extracted text", err), nil
			}
		}
		return response.OK(result), nil
	}
}

func makeExtractDirectoryHandler(manager docindex.ManagerService, defaultLanguage string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir, err := request.RequireString("dir")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("dir", "directory containing images")), nil
		}

		svc := dococr.NewService(defaultLanguage)
		result, err := svc.ExtractDirectory(ctx, dir, request.GetString("language", ""))
		if err != nil {
			return response.Err("extract directory", err), nil
		}

		if indexName := request.GetString("index_name", ""); indexName != "" {
			for _, extracted := range result.Results {
				if err := indexExtracted(manager, indexName, extracted); err != nil {
					return response.Err("index extracted text", err), nil
				}
			}
		}
		return response.OK(result), nil
	}
}
