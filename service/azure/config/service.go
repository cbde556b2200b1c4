package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// NewService builds the shared credential used by every Azure service
// wrapper. DefaultAzureCredential covers environment variables
// (AZURE_CLIENT_ID, AZURE_TENANT_ID, AZURE_CLIENT_SECRET), managed
// identity, Azure CLI, and Azure PowerShell.
func NewService(subscriptionID string) (*service, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		credential:     credential,
	}, nil
}

func (s *service) GetCredential() *Credential {
	return s.credential
}

func (s *service) GetSubscriptionID() string {
	return s.subscriptionID
}
