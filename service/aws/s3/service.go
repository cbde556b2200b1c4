package awss3

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		client: s3.NewFromConfig(awsconfig),
	}
}

func (s *service) ListBuckets(ctx context.Context) ([]Bucket, error) {
	output, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	var buckets []Bucket
	for _, b := range output.Buckets {
		buckets = append(buckets, Bucket{
			Name:    aws.ToString(b.Name),
			Created: aws.ToTime(b.CreationDate),
		})
	}

	return buckets, nil
}

func (s *service) ListObjects(ctx context.Context, bucket, prefix string, maxKeys int32) (*ObjectListing, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(maxKeys),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	output, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, err
	}

	listing := &ObjectListing{
		Bucket:    bucket,
		Prefix:    prefix,
		Truncated: aws.ToBool(output.IsTruncated),
	}
	for _, o := range output.Contents {
		listing.Objects = append(listing.Objects, Object{
			Key:          aws.ToString(o.Key),
			SizeBytes:    aws.ToInt64(o.Size),
			LastModified: aws.ToTime(o.LastModified),
			StorageClass: string(o.StorageClass),
		})
	}

	return listing, nil
}

func (s *service) GetObjectText(ctx context.Context, bucket, key string, maxBytes int64) (*ObjectContent, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()

	body, err := io.ReadAll(io.LimitReader(output.Body, maxBytes))
	if err != nil {
		return nil, err
	}

	size := aws.ToInt64(output.ContentLength)
	return &ObjectContent{
		Bucket:      bucket,
		Key:         key,
		ContentType: aws.ToString(output.ContentType),
		SizeBytes:   size,
		Body:        string(body),
		Truncated:   size > int64(len(body)),
	}, nil
}

func (s *service) PutObjectText(ctx context.Context, bucket, key, content, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(content),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, input)
	return err
}

func (s *service) DeleteObject(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *service) PresignGetObject(ctx context.Context, bucket, key string, expiry time.Duration) (*PresignedURL, error) {
	presigner := s3.NewPresignClient(s.client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return nil, err
	}

	return &PresignedURL{
		Bucket:    bucket,
		Key:       key,
		URL:       req.URL,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}
