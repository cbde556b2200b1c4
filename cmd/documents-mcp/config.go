package main

import (
	"os"
	"path/filepath"
)

// Config holds environment-based configuration for the documents server
type Config struct {
	IndexRoot   string
	OCRLanguage string
	VaultPath   string
	VaultKey    string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".mcp-documents")

	return &Config{
		IndexRoot:   getEnvOrDefault("DOCUMENTS_INDEX_ROOT", filepath.Join(base, "indexes")),
		OCRLanguage: getEnvOrDefault("DOCUMENTS_OCR_LANGUAGE", "eng"),
		VaultPath:   getEnvOrDefault("DOCUMENTS_VAULT_PATH", filepath.Join(base, "vault.enc")),
		VaultKey:    os.Getenv("DOCUMENTS_VAULT_KEY"),
	}
}

// HasVault returns true if the vault passphrase is configured.
// The passphrase only ever comes from the environment.
func (c *Config) HasVault() bool {
	return c.VaultKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
