package main

import "os"

// Config holds environment-based configuration for the AWS server
type Config struct {
	Region    string
	Profile   string
	AccountID string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Region:    getEnvOrDefault("AWS_REGION", "us-east-1"),
		Profile:   os.Getenv("AWS_PROFILE"),
		// Optional override. When empty, the QuickSight tools resolve
		// the account from the caller identity instead.
		AccountID: os.Getenv("AWS_ACCOUNT_ID"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
