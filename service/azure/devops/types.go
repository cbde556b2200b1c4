package azuredevops

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

type service struct {
	connection *azuredevops.Connection
}

type DevOpsService interface {
	ListProjects(ctx context.Context) ([]Project, error)
	ListRepositories(ctx context.Context, project string) ([]Repository, error)
	ListBuilds(ctx context.Context, project string, top int) ([]Build, error)
	QueryWorkItems(ctx context.Context, project, wiql string) ([]WorkItem, error)
}

// Project is an Azure DevOps project summary.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
	Description string `json:"description,omitempty"`
}

// Repository is a Git repository in a project.
type Repository struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DefaultBranch string `json:"default_branch,omitempty"`
	WebURL        string `json:"web_url,omitempty"`
	SizeBytes     uint64 `json:"size_bytes,omitempty"`
}

// Build is one pipeline run.
type Build struct {
	ID           int    `json:"id"`
	BuildNumber  string `json:"build_number"`
	Definition   string `json:"definition,omitempty"`
	Status       string `json:"status,omitempty"`
	Result       string `json:"result,omitempty"`
	SourceBranch string `json:"source_branch,omitempty"`
	RequestedBy  string `json:"requested_by,omitempty"`
}

// WorkItem is one work item returned by a WIQL query.
type WorkItem struct {
	ID    int    `json:"id"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
	State string `json:"state,omitempty"`
}
