package awsecr

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		client: ecr.NewFromConfig(awsconfig),
	}
}

func (s *service) ListRepositories(ctx context.Context) ([]Repository, error) {
	var repos []Repository
	paginator := ecr.NewDescribeRepositoriesPaginator(s.client, &ecr.DescribeRepositoriesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range page.Repositories {
			repo := Repository{
				Name:    aws.ToString(r.RepositoryName),
				URI:     aws.ToString(r.RepositoryUri),
				Created: aws.ToTime(r.CreatedAt),
			}
			if r.ImageScanningConfiguration != nil {
				repo.ScanOnPush = r.ImageScanningConfiguration.ScanOnPush
			}
			repos = append(repos, repo)
		}
	}

	return repos, nil
}

func (s *service) ListImages(ctx context.Context, repository string) ([]Image, error) {
	var images []Image
	paginator := ecr.NewDescribeImagesPaginator(s.client, &ecr.DescribeImagesInput{
		RepositoryName: aws.String(repository),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, img := range page.ImageDetails {
			images = append(images, Image{
				Digest:    aws.ToString(img.ImageDigest),
				Tags:      img.ImageTags,
				SizeBytes: aws.ToInt64(img.ImageSizeInBytes),
				PushedAt:  aws.ToTime(img.ImagePushedAt),
			})
		}
	}

	return images, nil
}

func (s *service) GetScanFindings(ctx context.Context, repository, tag string) (*ScanFindings, error) {
	output, err := s.client.DescribeImageScanFindings(ctx, &ecr.DescribeImageScanFindingsInput{
		RepositoryName: aws.String(repository),
		ImageId: &ecrtypes.ImageIdentifier{
			ImageTag: aws.String(tag),
		},
	})
	if err != nil {
		return nil, err
	}

	result := &ScanFindings{
		Repository: repository,
		Tag:        tag,
	}
	if output.ImageScanStatus != nil {
		result.Status = string(output.ImageScanStatus.Status)
	}
	if output.ImageScanFindings != nil {
		if len(output.ImageScanFindings.FindingSeverityCounts) > 0 {
			result.SeverityCount = make(map[string]int32)
			for severity, count := range output.ImageScanFindings.FindingSeverityCounts {
				result.SeverityCount[severity] = count
			}
		}
		for _, f := range output.ImageScanFindings.Findings {
			result.Findings = append(result.Findings, Finding{
				Name:        aws.ToString(f.Name),
				Severity:    string(f.Severity),
				Description: aws.ToString(f.Description),
				URI:         aws.ToString(f.Uri),
			})
		}
	}

	return result, nil
}
