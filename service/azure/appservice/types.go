package azureappservice

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID string
	client         *armappservice.WebAppsClient
}

type Credential = azureconfig.Credential

type AppServiceService interface {
	ListWebApps(ctx context.Context) ([]WebApp, error)
	GetWebApp(ctx context.Context, resourceGroup, name string) (*WebApp, error)
	RestartWebApp(ctx context.Context, resourceGroup, name string) error
	GetAppSettings(ctx context.Context, resourceGroup, name string) (map[string]string, error)
}

// WebApp is an App Service site summary.
type WebApp struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resource_group"`
	Location      string `json:"location"`
	State         string `json:"state"`
	DefaultHost   string `json:"default_hostname,omitempty"`
	Kind          string `json:"kind,omitempty"`
	HTTPSOnly     bool   `json:"https_only"`
	RuntimeStack  string `json:"runtime_stack,omitempty"`
}
