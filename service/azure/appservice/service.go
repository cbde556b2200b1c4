package azureappservice

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armappservice.NewWebAppsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create web apps client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

func (s *service) ListWebApps(ctx context.Context) ([]WebApp, error) {
	var apps []WebApp
	pager := s.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, site := range page.Value {
			apps = append(apps, convertSite(site))
		}
	}

	return apps, nil
}

func (s *service) GetWebApp(ctx context.Context, resourceGroup, name string) (*WebApp, error) {
	resp, err := s.client.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, err
	}

	app := convertSite(&resp.Site)
	return &app, nil
}

func (s *service) RestartWebApp(ctx context.Context, resourceGroup, name string) error {
	_, err := s.client.Restart(ctx, resourceGroup, name, nil)
	return err
}

func (s *service) GetAppSettings(ctx context.Context, resourceGroup, name string) (map[string]string, error) {
	resp, err := s.client.ListApplicationSettings(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(resp.Properties))
	for key, value := range resp.Properties {
		settings[key] = deref(value)
	}

	return settings, nil
}

func convertSite(site *armappservice.Site) WebApp {
	app := WebApp{
		Name: deref(site.Name),
		Kind: deref(site.Kind),
	}
	if site.Location != nil {
		app.Location = *site.Location
	}
	if site.Properties != nil {
		app.State = deref(site.Properties.State)
		app.DefaultHost = deref(site.Properties.DefaultHostName)
		app.ResourceGroup = deref(site.Properties.ResourceGroup)
		if site.Properties.HTTPSOnly != nil {
			app.HTTPSOnly = *site.Properties.HTTPSOnly
		}
		if site.Properties.SiteConfig != nil {
			app.RuntimeStack = deref(site.Properties.SiteConfig.LinuxFxVersion)
		}
	}
	return app
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
