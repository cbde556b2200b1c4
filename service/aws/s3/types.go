package awss3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type service struct {
	client *s3.Client
}

type S3Service interface {
	ListBuckets(ctx context.Context) ([]Bucket, error)
	ListObjects(ctx context.Context, bucket, prefix string, maxKeys int32) (*ObjectListing, error)
	GetObjectText(ctx context.Context, bucket, key string, maxBytes int64) (*ObjectContent, error)
	PutObjectText(ctx context.Context, bucket, key, content, contentType string) error
	DeleteObject(ctx context.Context, bucket, key string) error
	PresignGetObject(ctx context.Context, bucket, key string, expiry time.Duration) (*PresignedURL, error)
}

// Bucket is an S3 bucket summary.
type Bucket struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

// Object is an S3 object summary.
type Object struct {
	Key          string    `json:"key"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
	StorageClass string    `json:"storage_class,omitempty"`
}

// ObjectListing is one page of objects under a prefix.
type ObjectListing struct {
	Bucket    string   `json:"bucket"`
	Prefix    string   `json:"prefix,omitempty"`
	Objects   []Object `json:"objects"`
	Truncated bool     `json:"truncated"`
}

// ObjectContent is the (possibly truncated) text body of an object.
type ObjectContent struct {
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
	Body        string `json:"body"`
	Truncated   bool   `json:"truncated"`
}

// PresignedURL is a time-limited GET URL for an object.
type PresignedURL struct {
	Bucket    string    `json:"bucket"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
