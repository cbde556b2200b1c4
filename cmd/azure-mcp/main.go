package main

import (
	"fmt"
	"os"

	"github.com/lxman/mcp-cloudtools/cmd/azure-mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"azure-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// ARM areas need a subscription; storage, key vault and DevOps
	// each have their own configuration and register independently.
	if cfg.HasSubscription() {
		tools.RegisterResourceTools(s, cfg.SubscriptionID)
		tools.RegisterAppServiceTools(s, cfg.SubscriptionID)
		tools.RegisterContainerTools(s, cfg.SubscriptionID)
		tools.RegisterCostTools(s, cfg.SubscriptionID)
		tools.RegisterMonitorTools(s, cfg.SubscriptionID)
		tools.RegisterSQLTools(s, cfg.SubscriptionID)
		tools.RegisterServiceBusTools(s, cfg.SubscriptionID)
		tools.RegisterNetworkTools(s, cfg.SubscriptionID)
		tools.RegisterEventHubsTools(s, cfg.SubscriptionID)
	}
	if cfg.HasStorage() {
		tools.RegisterStorageTools(s, cfg.StorageAccount)
	}
	if cfg.HasKeyVault() {
		tools.RegisterKeyVaultTools(s, cfg.KeyVaultURL)
	}
	if cfg.HasDevOps() {
		tools.RegisterDevOpsTools(s, cfg.DevOpsOrgURL, cfg.DevOpsPAT)
	}

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
