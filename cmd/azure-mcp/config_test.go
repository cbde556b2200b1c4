package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigGates(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "")
	t.Setenv("AZURE_STORAGE_ACCOUNT", "")
	t.Setenv("AZURE_KEYVAULT_URL", "")
	t.Setenv("AZURE_DEVOPS_ORG_URL", "")
	t.Setenv("AZURE_DEVOPS_PAT", "")

	cfg := LoadConfig()
	assert.False(t, cfg.HasSubscription())
	assert.False(t, cfg.HasStorage())
	assert.False(t, cfg.HasKeyVault())
	assert.False(t, cfg.HasDevOps())

	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub-123")
	t.Setenv("AZURE_STORAGE_ACCOUNT", "mystorageacct")
	t.Setenv("AZURE_KEYVAULT_URL", "https://my-vault.vault.azure.net/")

	cfg = LoadConfig()
	assert.True(t, cfg.HasSubscription())
	assert.True(t, cfg.HasStorage())
	assert.True(t, cfg.HasKeyVault())

	// DevOps registers on the org URL alone; the PAT is checked per call.
	t.Setenv("AZURE_DEVOPS_ORG_URL", "https://dev.azure.com/my-org")
	cfg = LoadConfig()
	assert.True(t, cfg.HasDevOps())
	assert.Empty(t, cfg.DevOpsPAT)
}
