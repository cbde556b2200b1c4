package azurestorage

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azureconfig "github.com/lxman/mcp-cloudtools/service/azure/config"
)

type service struct {
	accountName string
	client      *azblob.Client
}

type Credential = azureconfig.Credential

type StorageService interface {
	ListContainers(ctx context.Context) ([]Container, error)
	ListBlobs(ctx context.Context, container, prefix string, maxResults int32) ([]Blob, error)
	DownloadBlobText(ctx context.Context, container, name string, maxBytes int64) (*BlobContent, error)
	UploadBlobText(ctx context.Context, container, name, content string) error
	DeleteBlob(ctx context.Context, container, name string) error
}

// Container is a blob container summary.
type Container struct {
	Name         string    `json:"name"`
	LastModified time.Time `json:"last_modified"`
}

// Blob is a blob summary.
type Blob struct {
	Name         string    `json:"name"`
	SizeBytes    int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
	AccessTier   string    `json:"access_tier,omitempty"`
}

// BlobContent is the (possibly truncated) text body of a blob.
type BlobContent struct {
	Container string `json:"container"`
	Name      string `json:"name"`
	Body      string `json:"body"`
	Truncated bool   `json:"truncated"`
}
