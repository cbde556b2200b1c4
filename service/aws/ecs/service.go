package awsecs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		client: ecs.NewFromConfig(awsconfig),
	}
}

func (s *service) ListClusters(ctx context.Context) ([]Cluster, error) {
	listOutput, err := s.client.ListClusters(ctx, &ecs.ListClustersInput{})
	if err != nil {
		return nil, err
	}
	if len(listOutput.ClusterArns) == 0 {
		return nil, nil
	}

	output, err := s.client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
		Clusters: listOutput.ClusterArns,
	})
	if err != nil {
		return nil, err
	}

	var clusters []Cluster
	for _, c := range output.Clusters {
		clusters = append(clusters, Cluster{
			Name:              aws.ToString(c.ClusterName),
			ARN:               aws.ToString(c.ClusterArn),
			Status:            aws.ToString(c.Status),
			ActiveServices:    c.ActiveServicesCount,
			RunningTasks:      c.RunningTasksCount,
			PendingTasks:      c.PendingTasksCount,
			RegisteredEC2Size: c.RegisteredContainerInstancesCount,
		})
	}

	return clusters, nil
}

func (s *service) ListServices(ctx context.Context, cluster string) ([]Service, error) {
	var arns []string
	paginator := ecs.NewListServicesPaginator(s.client, &ecs.ListServicesInput{
		Cluster: aws.String(cluster),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		arns = append(arns, page.ServiceArns...)
	}
	if len(arns) == 0 {
		return nil, nil
	}

	var services []Service

	// DescribeServices accepts at most 10 services per call.
	for start := 0; start < len(arns); start += 10 {
		end := min(start+10, len(arns))
		output, err := s.client.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  aws.String(cluster),
			Services: arns[start:end],
		})
		if err != nil {
			return nil, err
		}
		for _, svc := range output.Services {
			services = append(services, convertService(svc))
		}
	}

	return services, nil
}

func (s *service) ListTasks(ctx context.Context, cluster, serviceName string) ([]Task, error) {
	input := &ecs.ListTasksInput{
		Cluster: aws.String(cluster),
	}
	if serviceName != "" {
		input.ServiceName = aws.String(serviceName)
	}

	listOutput, err := s.client.ListTasks(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(listOutput.TaskArns) == 0 {
		return nil, nil
	}

	output, err := s.client.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   listOutput.TaskArns,
	})
	if err != nil {
		return nil, err
	}

	var tasks []Task
	for _, t := range output.Tasks {
		tasks = append(tasks, convertTask(t))
	}

	return tasks, nil
}

func (s *service) ScaleService(ctx context.Context, cluster, serviceName string, desiredCount int32) (*Service, error) {
	output, err := s.client.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:      aws.String(cluster),
		Service:      aws.String(serviceName),
		DesiredCount: aws.Int32(desiredCount),
	})
	if err != nil {
		return nil, err
	}

	svc := convertService(*output.Service)
	return &svc, nil
}

func (s *service) StopTask(ctx context.Context, cluster, taskARN, reason string) (*Task, error) {
	input := &ecs.StopTaskInput{
		Cluster: aws.String(cluster),
		Task:    aws.String(taskARN),
	}
	if reason != "" {
		input.Reason = aws.String(reason)
	}

	output, err := s.client.StopTask(ctx, input)
	if err != nil {
		return nil, err
	}

	task := convertTask(*output.Task)
	return &task, nil
}

func convertService(svc ecstypes.Service) Service {
	return Service{
		Name:         aws.ToString(svc.ServiceName),
		ARN:          aws.ToString(svc.ServiceArn),
		Status:       aws.ToString(svc.Status),
		DesiredCount: svc.DesiredCount,
		RunningCount: svc.RunningCount,
		PendingCount: svc.PendingCount,
		LaunchType:   string(svc.LaunchType),
		TaskDef:      aws.ToString(svc.TaskDefinition),
	}
}

func convertTask(t ecstypes.Task) Task {
	return Task{
		ARN:           aws.ToString(t.TaskArn),
		TaskDef:       aws.ToString(t.TaskDefinitionArn),
		LastStatus:    aws.ToString(t.LastStatus),
		DesiredStatus: aws.ToString(t.DesiredStatus),
		StartedAt:     aws.ToTime(t.StartedAt),
		StoppedReason: aws.ToString(t.StoppedReason),
	}
}
