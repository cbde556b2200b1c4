package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_ACCOUNT_ID", "")

	cfg := LoadConfig()
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Empty(t, cfg.Profile)
	assert.Empty(t, cfg.AccountID)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_PROFILE", "staging")
	t.Setenv("AWS_ACCOUNT_ID", "123456789012")

	cfg := LoadConfig()
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "staging", cfg.Profile)
	assert.Equal(t, "123456789012", cfg.AccountID)
}
