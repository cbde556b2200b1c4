package azurekeyvault

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	vaultURL string
	client   *azsecrets.Client
}

type Credential = azureconfig.Credential

type KeyVaultService interface {
	ListSecrets(ctx context.Context) ([]SecretSummary, error)
	GetSecret(ctx context.Context, name string) (*Secret, error)
	SetSecret(ctx context.Context, name, value string) (*SecretSummary, error)
	DeleteSecret(ctx context.Context, name string) error
}

// SecretSummary is a secret's metadata without its value.
type SecretSummary struct {
	Name    string    `json:"name"`
	Enabled bool      `json:"enabled"`
	Updated time.Time `json:"updated,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// Secret is a secret with its value. Returned only by the explicit
// get operation.
type Secret struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	ContentType string `json:"content_type,omitempty"`
	Version     string `json:"version,omitempty"`
}
