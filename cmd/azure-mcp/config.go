package main

import "os"

// Config holds environment-based configuration for the Azure server
type Config struct {
	SubscriptionID string
	StorageAccount string
	KeyVaultURL    string
	DevOpsOrgURL   string
	DevOpsPAT      string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		SubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
		StorageAccount: os.Getenv("AZURE_STORAGE_ACCOUNT"),
		KeyVaultURL:    os.Getenv("AZURE_KEYVAULT_URL"),
		DevOpsOrgURL:   os.Getenv("AZURE_DEVOPS_ORG_URL"),
		DevOpsPAT:      os.Getenv("AZURE_DEVOPS_PAT"),
	}
}

// HasSubscription returns true if an ARM subscription is configured
func (c *Config) HasSubscription() bool {
	return c.SubscriptionID != ""
}

// HasStorage returns true if a blob storage account is configured
func (c *Config) HasStorage() bool {
	return c.StorageAccount != ""
}

// HasKeyVault returns true if a Key Vault URL is configured
func (c *Config) HasKeyVault() bool {
	return c.KeyVaultURL != ""
}

// HasDevOps returns true if an Azure DevOps organization is
// configured. A missing PAT is reported per call instead so the
// operator sees which variable to set.
func (c *Config) HasDevOps() bool {
	return c.DevOpsOrgURL != ""
}
