package awsecr

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

type service struct {
	client *ecr.Client
}

type ECRService interface {
	ListRepositories(ctx context.Context) ([]Repository, error)
	ListImages(ctx context.Context, repository string) ([]Image, error)
	GetScanFindings(ctx context.Context, repository, tag string) (*ScanFindings, error)
}

// Repository is an ECR repository summary.
type Repository struct {
	Name       string    `json:"name"`
	URI        string    `json:"uri"`
	Created    time.Time `json:"created"`
	ScanOnPush bool      `json:"scan_on_push"`
}

// Image is one image in a repository.
type Image struct {
	Digest    string    `json:"digest"`
	Tags      []string  `json:"tags,omitempty"`
	SizeBytes int64     `json:"size_bytes"`
	PushedAt  time.Time `json:"pushed_at"`
}

// Finding is a single vulnerability finding.
type Finding struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description,omitempty"`
	URI         string `json:"uri,omitempty"`
}

// ScanFindings is the scan result for one image.
type ScanFindings struct {
	Repository    string           `json:"repository"`
	Tag           string           `json:"tag"`
	Status        string           `json:"status"`
	SeverityCount map[string]int32 `json:"severity_counts,omitempty"`
	Findings      []Finding        `json:"findings,omitempty"`
}
