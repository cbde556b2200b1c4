package azuredevops

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
)

// NewService connects to an Azure DevOps organization with a personal
// access token. orgURL is the full organization URL, e.g.
// https://dev.azure.com/myorg.
func NewService(orgURL, personalAccessToken string) *service {
	return &service{
		connection: azuredevops.NewPatConnection(orgURL, personalAccessToken),
	}
}

func (s *service) ListProjects(ctx context.Context) ([]Project, error) {
	client, err := core.NewClient(ctx, s.connection)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetProjects(ctx, core.GetProjectsArgs{})
	if err != nil {
		return nil, err
	}

	var projects []Project
	for _, p := range resp.Value {
		project := Project{}
		if p.Id != nil {
			project.ID = p.Id.String()
		}
		if p.Name != nil {
			project.Name = *p.Name
		}
		if p.State != nil {
			project.State = string(*p.State)
		}
		if p.Visibility != nil {
			project.Visibility = string(*p.Visibility)
		}
		if p.Description != nil {
			project.Description = *p.Description
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func (s *service) ListRepositories(ctx context.Context, project string) ([]Repository, error) {
	client, err := git.NewClient(ctx, s.connection)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetRepositories(ctx, git.GetRepositoriesArgs{
		Project: &project,
	})
	if err != nil {
		return nil, err
	}

	var repos []Repository
	for _, r := range *resp {
		repo := Repository{}
		if r.Id != nil {
			repo.ID = r.Id.String()
		}
		if r.Name != nil {
			repo.Name = *r.Name
		}
		if r.DefaultBranch != nil {
			repo.DefaultBranch = *r.DefaultBranch
		}
		if r.WebUrl != nil {
			repo.WebURL = *r.WebUrl
		}
		if r.Size != nil {
			repo.SizeBytes = *r.Size
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

func (s *service) ListBuilds(ctx context.Context, project string, top int) ([]Build, error) {
	client, err := build.NewClient(ctx, s.connection)
	if err != nil {
		return nil, err
	}

	args := build.GetBuildsArgs{Project: &project}
	if top > 0 {
		args.Top = &top
	}

	resp, err := client.GetBuilds(ctx, args)
	if err != nil {
		return nil, err
	}

	var builds []Build
	for _, b := range resp.Value {
		item := Build{}
		if b.Id != nil {
			item.ID = *b.Id
		}
		if b.BuildNumber != nil {
			item.BuildNumber = *b.BuildNumber
		}
		if b.Definition != nil && b.Definition.Name != nil {
			item.Definition = *b.Definition.Name
		}
		if b.Status != nil {
			item.Status = string(*b.Status)
		}
		if b.Result != nil {
			item.Result = string(*b.Result)
		}
		if b.SourceBranch != nil {
			item.SourceBranch = *b.SourceBranch
		}
		if b.RequestedBy != nil && b.RequestedBy.DisplayName != nil {
			item.RequestedBy = *b.RequestedBy.DisplayName
		}
		builds = append(builds, item)
	}

	return builds, nil
}

func (s *service) QueryWorkItems(ctx context.Context, project, wiql string) ([]WorkItem, error) {
	client, err := workitemtracking.NewClient(ctx, s.connection)
	if err != nil {
		return nil, err
	}

	queryResp, err := client.QueryByWiql(ctx, workitemtracking.QueryByWiqlArgs{
		Wiql:    &workitemtracking.Wiql{Query: &wiql},
		Project: &project,
	})
	if err != nil {
		return nil, err
	}
	if queryResp.WorkItems == nil || len(*queryResp.WorkItems) == 0 {
		return nil, nil
	}

	var ids []int
	for _, ref := range *queryResp.WorkItems {
		if ref.Id != nil {
			ids = append(ids, *ref.Id)
		}
	}

	itemsResp, err := client.GetWorkItems(ctx, workitemtracking.GetWorkItemsArgs{
		Ids: &ids,
	})
	if err != nil {
		return nil, err
	}

	var items []WorkItem
	for _, wi := range *itemsResp {
		item := WorkItem{}
		if wi.Id != nil {
			item.ID = *wi.Id
		}
		if wi.Fields != nil {
			fields := *wi.Fields
			item.Type = stringField(fields, "System.WorkItemType")
			item.Title = stringField(fields, "System.Title")
			item.State = stringField(fields, "System.State")
		}
		items = append(items, item)
	}

	return items, nil
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
