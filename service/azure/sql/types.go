package azuresql

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	subscriptionID  string
	serversClient   *armsql.ServersClient
	databasesClient *armsql.DatabasesClient
}

type Credential = azureconfig.Credential

type SQLService interface {
	ListServers(ctx context.Context) ([]Server, error)
	ListDatabases(ctx context.Context, resourceGroup, server string) ([]Database, error)
	GetDatabase(ctx context.Context, resourceGroup, server, database string) (*Database, error)
}

// Server is an Azure SQL logical server.
type Server struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resource_group,omitempty"`
	Location      string `json:"location"`
	FQDN          string `json:"fqdn,omitempty"`
	Version       string `json:"version,omitempty"`
	AdminLogin    string `json:"admin_login,omitempty"`
	State         string `json:"state,omitempty"`
}

// Database is a database on a logical server.
type Database struct {
	Name         string    `json:"name"`
	Status       string    `json:"status,omitempty"`
	SKU          string    `json:"sku,omitempty"`
	MaxSizeBytes int64     `json:"max_size_bytes,omitempty"`
	Collation    string    `json:"collation,omitempty"`
	Created      time.Time `json:"created,omitempty"`
}
