package tools

import (
	"context"
	"time"

	"github.com/lxman/mcp-cloudtools/internal/remediation"
	"github.com/lxman/mcp-cloudtools/internal/response"
	awsconfig "github.com/lxman/mcp-cloudtools/service/aws/config"
	awss3 "github.com/lxman/mcp-cloudtools/service/aws/s3"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterS3Tools registers S3 bucket and object tools
func RegisterS3Tools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("aws_s3_list_buckets",
			mcp.WithDescription("List all S3 buckets in the account"),
		),
		makeListBucketsHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_s3_list_objects",
			mcp.WithDescription("List objects in an S3 bucket, optionally under a key prefix"),
			mcp.WithString("bucket", mcp.Required(), mcp.Description("Bucket name")),
			mcp.WithString("prefix", mcp.Description("Key prefix filter")),
			mcp.WithNumber("max_keys", mcp.Description("Maximum objects to return (default 100)")),
		),
		makeListObjectsHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_s3_get_object_text",
			mcp.WithDescription("Read an S3 object as text, truncated to a byte limit"),
			mcp.WithString("bucket", mcp.Required(), mcp.Description("Bucket name")),
			mcp.WithString("key", mcp.Required(), mcp.Description("Object key")),
			mcp.WithNumber("max_bytes", mcp.Description("Maximum bytes to read (default 65536)")),
		),
		makeGetObjectTextHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_s3_put_object_text",
			mcp.WithDescription("Write text content to an S3 object"),
			mcp.WithString("bucket", mcp.Required(), mcp.Description("Bucket name")),
			mcp.WithString("key", mcp.Required(), mcp.Description("Object key")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Text content to store")),
			mcp.WithString("content_type", mcp.Description("Content type (default text/plain)")),
		),
		makePutObjectTextHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_s3_delete_object",
			mcp.WithDescription("Delete an object from an S3 bucket"),
			mcp.WithString("bucket", mcp.Required(), mcp.Description("Bucket name")),
			mcp.WithString("key", mcp.Required(), mcp.Description("Object key")),
		),
		makeDeleteObjectHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_s3_presign_get_object",
			mcp.WithDescription("Create a time-limited download URL for an S3 object"),
			mcp.WithString("bucket", mcp.Required(), mcp.Description("Bucket name")),
			mcp.WithString("key", mcp.Required(), mcp.Description("Object key")),
			mcp.WithNumber("expiry_minutes", mcp.Description("URL validity in minutes (default 15)")),
		),
		makePresignGetObjectHandler(region, profile),
	)
}

func s3Service(ctx context.Context, region, profile string) (awss3.S3Service, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return awss3.NewService(awsCfg), nil
}

func requireBucketKey(request mcp.CallToolRequest) (string, string, *remediation.Classified) {
	bucket, err := request.RequireString("bucket")
	if err != nil {
		return "", "", remediation.MissingParameter("bucket", "S3 bucket name")
	}
	key, err := request.RequireString("key")
	if err != nil {
		return "", "", remediation.MissingParameter("key", "S3 object key")
	}
	return bucket, key, nil
}

func makeListBucketsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		svc, err := s3Service(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		buckets, err := svc.ListBuckets(ctx)
		if err != nil {
			return response.Err("list buckets", err), nil
		}
		return response.OK(buckets), nil
	}
}

func makeListObjectsHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bucket, err := request.RequireString("bucket")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("bucket", "S3 bucket name")), nil
		}

		svc, err := s3Service(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		listing, err := svc.ListObjects(ctx, bucket, request.GetString("prefix", ""), int32(request.GetInt("max_keys", 100)))
		if err != nil {
			return response.Err("list objects", err), nil
		}
		return response.OK(listing), nil
	}
}

func makeGetObjectTextHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bucket, key, perr := requireBucketKey(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := s3Service(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		content, err := svc.GetObjectText(ctx, bucket, key, int64(request.GetInt("max_bytes", 65536)))
		if err != nil {
			return response.Err("get object", err), nil
		}
		return response.OK(content), nil
	}
}

func makePutObjectTextHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bucket, key, perr := requireBucketKey(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}
		content, err := request.RequireString("content")
		if err != nil {
			return response.Err("read parameters", remediation.MissingParameter("content", "text content to store")), nil
		}

		svc, err := s3Service(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		if err := svc.PutObjectText(ctx, bucket, key, content, request.GetString("content_type", "text/plain")); err != nil {
			return response.Err("put object", err), nil
		}
		return response.OK(map[string]string{"bucket": bucket, "key": key}), nil
	}
}

func makeDeleteObjectHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bucket, key, perr := requireBucketKey(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := s3Service(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		if err := svc.DeleteObject(ctx, bucket, key); err != nil {
			return response.Err("delete object", err), nil
		}
		return response.OK(map[string]string{"deleted": key, "bucket": bucket}), nil
	}
}

func makePresignGetObjectHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bucket, key, perr := requireBucketKey(request)
		if perr != nil {
			return response.Err("read parameters", perr), nil
		}

		svc, err := s3Service(ctx, region, profile)
		if err != nil {
			return response.Err("configure AWS", err), nil
		}

		expiry := time.Duration(request.GetInt("expiry_minutes", 15)) * time.Minute
		url, err := svc.PresignGetObject(ctx, bucket, key, expiry)
		if err != nil {
			return response.Err("presign object URL", err), nil
		}
		return response.OK(url), nil
	}
}
