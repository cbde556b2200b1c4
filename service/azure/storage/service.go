package azurestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// NewService targets one storage account's blob endpoint with the
// shared Azure AD credential.
func NewService(accountName string, credential *Credential) (*service, error) {
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", accountName)
	client, err := azblob.NewClient(serviceURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &service{
		accountName: accountName,
		client:      client,
	}, nil
}

func (s *service) ListContainers(ctx context.Context) ([]Container, error) {
	var containers []Container
	pager := s.client.NewListContainersPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range page.ContainerItems {
			item := Container{}
			if c.Name != nil {
				item.Name = *c.Name
			}
			if c.Properties != nil && c.Properties.LastModified != nil {
				item.LastModified = *c.Properties.LastModified
			}
			containers = append(containers, item)
		}
	}

	return containers, nil
}

func (s *service) ListBlobs(ctx context.Context, containerName, prefix string, maxResults int32) ([]Blob, error) {
	options := &container.ListBlobsFlatOptions{}
	if prefix != "" {
		options.Prefix = to.Ptr(prefix)
	}
	if maxResults > 0 {
		options.MaxResults = to.Ptr(maxResults)
	}

	var blobs []Blob
	pager := s.client.NewListBlobsFlatPager(containerName, options)
	for pager.More() && (maxResults <= 0 || len(blobs) < int(maxResults)) {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range page.Segment.BlobItems {
			item := Blob{}
			if b.Name != nil {
				item.Name = *b.Name
			}
			if b.Properties != nil {
				if b.Properties.ContentLength != nil {
					item.SizeBytes = *b.Properties.ContentLength
				}
				if b.Properties.ContentType != nil {
					item.ContentType = *b.Properties.ContentType
				}
				if b.Properties.LastModified != nil {
					item.LastModified = *b.Properties.LastModified
				}
				if b.Properties.AccessTier != nil {
					item.AccessTier = string(*b.Properties.AccessTier)
				}
			}
			blobs = append(blobs, item)
			if maxResults > 0 && len(blobs) >= int(maxResults) {
				break
			}
		}
	}

	return blobs, nil
}

func (s *service) DownloadBlobText(ctx context.Context, containerName, name string, maxBytes int64) (*BlobContent, error) {
	resp, err := s.client.DownloadStream(ctx, containerName, name, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, err
	}

	content := &BlobContent{
		Container: containerName,
		Name:      name,
		Body:      string(body),
	}
	if resp.ContentLength != nil {
		content.Truncated = *resp.ContentLength > int64(len(body))
	}

	return content, nil
}

func (s *service) UploadBlobText(ctx context.Context, containerName, name, content string) error {
	_, err := s.client.UploadBuffer(ctx, containerName, name, []byte(content), nil)
	return err
}

func (s *service) DeleteBlob(ctx context.Context, containerName, name string) error {
	_, err := s.client.DeleteBlob(ctx, containerName, name, nil)
	return err
}
