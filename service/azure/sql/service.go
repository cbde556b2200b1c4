package azuresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	serversClient, err := armsql.NewServersClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL servers client: %w", err)
	}
	databasesClient, err := armsql.NewDatabasesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL databases client: %w", err)
	}

	return &service{
		subscriptionID:  subscriptionID,
		serversClient:   serversClient,
		databasesClient: databasesClient,
	}, nil
}

func (s *service) ListServers(ctx context.Context) ([]Server, error) {
	var servers []Server
	pager := s.serversClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, srv := range page.Value {
			server := Server{
				Name:          deref(srv.Name),
				ResourceGroup: resourceGroupFromID(deref(srv.ID)),
			}
			if srv.Location != nil {
				server.Location = *srv.Location
			}
			if srv.Properties != nil {
				server.FQDN = deref(srv.Properties.FullyQualifiedDomainName)
				server.Version = deref(srv.Properties.Version)
				server.AdminLogin = deref(srv.Properties.AdministratorLogin)
				server.State = deref(srv.Properties.State)
			}
			servers = append(servers, server)
		}
	}

	return servers, nil
}

func (s *service) ListDatabases(ctx context.Context, resourceGroup, server string) ([]Database, error) {
	var databases []Database
	pager := s.databasesClient.NewListByServerPager(resourceGroup, server, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, db := range page.Value {
			databases = append(databases, convertDatabase(db))
		}
	}

	return databases, nil
}

func (s *service) GetDatabase(ctx context.Context, resourceGroup, server, database string) (*Database, error) {
	resp, err := s.databasesClient.Get(ctx, resourceGroup, server, database, nil)
	if err != nil {
		return nil, err
	}

	db := convertDatabase(&resp.Database)
	return &db, nil
}

func convertDatabase(db *armsql.Database) Database {
	result := Database{
		Name: deref(db.Name),
	}
	if db.SKU != nil {
		result.SKU = deref(db.SKU.Name)
	}
	if db.Properties != nil {
		if db.Properties.Status != nil {
			result.Status = string(*db.Properties.Status)
		}
		if db.Properties.MaxSizeBytes != nil {
			result.MaxSizeBytes = *db.Properties.MaxSizeBytes
		}
		result.Collation = deref(db.Properties.Collation)
		if db.Properties.CreationDate != nil {
			result.Created = *db.Properties.CreationDate
		}
	}
	return result
}

// resourceGroupFromID pulls the resource group segment out of an ARM
// resource ID.
func resourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	for i := 0; i < len(parts)-1; i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
