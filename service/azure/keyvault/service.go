package azurekeyvault

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// NewService targets one vault's data plane, e.g.
// https://myvault.vault.azure.net/.
func NewService(vaultURL string, credential *Credential) (*service, error) {
	client, err := azsecrets.NewClient(vaultURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault client: %w", err)
	}

	return &service{
		vaultURL: vaultURL,
		client:   client,
	}, nil
}

func (s *service) ListSecrets(ctx context.Context) ([]SecretSummary, error) {
	var secrets []SecretSummary
	pager := s.client.NewListSecretPropertiesPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Value {
			summary := SecretSummary{}
			if item.ID != nil {
				summary.Name = item.ID.Name()
			}
			if item.Attributes != nil {
				if item.Attributes.Enabled != nil {
					summary.Enabled = *item.Attributes.Enabled
				}
				if item.Attributes.Updated != nil {
					summary.Updated = *item.Attributes.Updated
				}
				if item.Attributes.Expires != nil {
					summary.Expires = *item.Attributes.Expires
				}
			}
			secrets = append(secrets, summary)
		}
	}

	return secrets, nil
}

func (s *service) GetSecret(ctx context.Context, name string) (*Secret, error) {
	// Empty version resolves to the latest.
	resp, err := s.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		return nil, err
	}

	secret := &Secret{Name: name}
	if resp.Value != nil {
		secret.Value = *resp.Value
	}
	if resp.ContentType != nil {
		secret.ContentType = *resp.ContentType
	}
	if resp.ID != nil {
		secret.Version = resp.ID.Version()
	}

	return secret, nil
}

func (s *service) SetSecret(ctx context.Context, name, value string) (*SecretSummary, error) {
	resp, err := s.client.SetSecret(ctx, name, azsecrets.SetSecretParameters{
		Value: to.Ptr(value),
	}, nil)
	if err != nil {
		return nil, err
	}

	summary := &SecretSummary{Name: name}
	if resp.Attributes != nil {
		if resp.Attributes.Enabled != nil {
			summary.Enabled = *resp.Attributes.Enabled
		}
		if resp.Attributes.Updated != nil {
			summary.Updated = *resp.Attributes.Updated
		}
	}

	return summary, nil
}

func (s *service) DeleteSecret(ctx context.Context, name string) error {
	_, err := s.client.DeleteSecret(ctx, name, nil)
	return err
}
