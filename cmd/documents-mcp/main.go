package main

import (
	"fmt"
	"os"

	"github.com/lxman/mcp-cloudtools/cmd/documents-mcp/tools"
	docindex "github.com/lxman/mcp-cloudtools/service/documents/index"
	docpasswords "github.com/lxman/mcp-cloudtools/service/documents/passwords"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"documents-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// Indexes stay open across tool calls, so the manager lives for
	// the whole server process.
	manager, err := docindex.NewManager(cfg.IndexRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open index root: %v\n", err)
		os.Exit(1)
	}
	defer manager.Close()

	tools.RegisterIndexTools(s, manager)
	tools.RegisterOCRTools(s, manager, cfg.OCRLanguage)
	if cfg.HasVault() {
		// One vault per process; its lock serializes writes to the
		// vault file.
		vault, err := docpasswords.Open(cfg.VaultPath, cfg.VaultKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open password vault: %v\n", err)
			os.Exit(1)
		}
		tools.RegisterPasswordTools(s, vault)
	}

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
