package awssts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type service struct {
	client *sts.Client
}

type STSService interface {
	GetAccountInfo(ctx context.Context) (*AccountInfo, error)
}

// AccountInfo identifies the calling account and principal.
type AccountInfo struct {
	AccountID string `json:"account_id"`
	ARN       string `json:"arn"`
	UserID    string `json:"user_id"`
}
