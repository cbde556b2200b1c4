package main

import (
	"fmt"
	"os"

	"github.com/lxman/mcp-cloudtools/cmd/aws-mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"aws-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	tools.RegisterSTSTools(s, cfg.Region, cfg.Profile)
	tools.RegisterCloudWatchTools(s, cfg.Region, cfg.Profile)
	tools.RegisterS3Tools(s, cfg.Region, cfg.Profile)
	tools.RegisterECRTools(s, cfg.Region, cfg.Profile)
	tools.RegisterECSTools(s, cfg.Region, cfg.Profile)
	tools.RegisterQuickSightTools(s, cfg.Region, cfg.Profile, cfg.AccountID)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
