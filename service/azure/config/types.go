package azureconfig

import "github.com/Azure/azure-sdk-for-go/sdk/azidentity"

// Credential is shared across the Azure service wrappers so every
// client reuses one token cache.
type Credential = azidentity.DefaultAzureCredential

type service struct {
	subscriptionID string
	credential     *Credential
}

type ConfigService interface {
	GetCredential() *Credential
	GetSubscriptionID() string
}
