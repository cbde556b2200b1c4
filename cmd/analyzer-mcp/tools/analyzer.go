package tools

import (
	"context"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	"github.com/lxman/mcp-cloudtools/service/analyzer"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAnalyzerTools registers Go source inspection tools
func RegisterAnalyzerTools(s *server.MCPServer) {
	svc := analyzer.NewService()

	s.AddTool(
		mcp.NewTool("go_get_symbols",
			mcp.WithDescription("Extract functions, methods, types, constants and variables from Go source"),
			mcp.WithString("code", mcp.Required(), mcp.Description("Go source code to analyze")),
			mcp.WithString("file_name", mcp.Description("File name used in positions (default source.go)")),
			mcp.WithString("filter", mcp.Description("Symbol kind filter: function, type, const, var or all")),
		),
		makeSymbolsHandler(svc),
	)

	s.AddTool(
		mcp.NewTool("go_get_diagnostics",
			mcp.WithDescription("Parse Go source and report every syntax error with its position"),
			mcp.WithString("code", mcp.Required(), mcp.Description("Go source code to check")),
			mcp.WithString("file_name", mcp.Description("File name used in positions (default source.go)")),
		),
		makeDiagnosticsHandler(svc),
	)

	s.AddTool(
		mcp.NewTool("go_get_metrics",
			mcp.WithDescription("Compute line counts and cyclomatic complexity for Go source"),
			mcp.WithString("code", mcp.Required(), mcp.Description("Go source code to measure")),
			mcp.WithString("file_name", mcp.Description("File name used in positions (default source.go)")),
		),
		makeMetricsHandler(svc),
	)

	s.AddTool(
		mcp.NewTool("go_format",
			mcp.WithDescription("Format Go source with gofmt rules"),
			mcp.WithString("code", mcp.Required(), mcp.Description("Go source code to format")),
		),
		makeFormatHandler(svc),
	)
}

func requireCode(request mcp.CallToolRequest) (string, *remediation.Classified) {
	code, err := request.RequireString("code")
	if err != nil {
		return "", remediation.MissingParameter("code", "Go source code")
	}
	return code, nil
}

func makeSymbolsHandler(svc analyzer.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, perr := requireCode(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		report, err := svc.Symbols(code, request.GetString("file_name", ""), request.GetString("filter", ""))
		if err != nil {
			return response.Err("extract symbols", err), nil
		}
		return response.OK(report), nil
	}
}

func makeDiagnosticsHandler(svc analyzer.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, perr := requireCode(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		report, err := svc.Diagnostics(code, request.GetString("file_name", ""))
		if err != nil {
			return response.Err("check source", err), nil
		}
		return response.OK(report), nil
	}
}

func makeMetricsHandler(svc analyzer.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, perr := requireCode(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		report, err := svc.Metrics(code, request.GetString("file_name", ""))
		if err != nil {
			return response.Err("compute metrics", err), nil
		}
		return response.OK(report), nil
	}
}

func makeFormatHandler(svc analyzer.AnalyzerService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, perr := requireCode(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		result, err := svc.Format(code)
		if err != nil {
			return response.Err("format source", err), nil
		}
		return response.OK(result), nil
	}
}
