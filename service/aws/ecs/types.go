package awsecs

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

type service struct {
	client *ecs.Client
}

type ECSService interface {
	ListClusters(ctx context.Context) ([]Cluster, error)
	ListServices(ctx context.Context, cluster string) ([]Service, error)
	ListTasks(ctx context.Context, cluster, serviceName string) ([]Task, error)
	ScaleService(ctx context.Context, cluster, serviceName string, desiredCount int32) (*Service, error)
	StopTask(ctx context.Context, cluster, taskARN, reason string) (*Task, error)
}

// Cluster is an ECS cluster summary.
type Cluster struct {
	Name              string `json:"name"`
	ARN               string `json:"arn"`
	Status            string `json:"status"`
	ActiveServices    int32  `json:"active_services"`
	RunningTasks      int32  `json:"running_tasks"`
	PendingTasks      int32  `json:"pending_tasks"`
	RegisteredEC2Size int32  `json:"registered_container_instances"`
}

// Service is an ECS service with its deployment counts.
type Service struct {
	Name         string `json:"name"`
	ARN          string `json:"arn"`
	Status       string `json:"status"`
	DesiredCount int32  `json:"desired_count"`
	RunningCount int32  `json:"running_count"`
	PendingCount int32  `json:"pending_count"`
	LaunchType   string `json:"launch_type,omitempty"`
	TaskDef      string `json:"task_definition"`
}

// Task is one running or stopped task.
type Task struct {
	ARN           string    `json:"arn"`
	TaskDef       string    `json:"task_definition"`
	LastStatus    string    `json:"last_status"`
	DesiredStatus string    `json:"desired_status"`
	StartedAt     time.Time `json:"started_at,omitempty"`
	StoppedReason string    `json:"stopped_reason,omitempty"`
}
