package ports

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	sqsadapter "queue.service/internal/adapters/sqs"
)

//go:generate go tool moq -pkg api_test -stub -out ../api/queue_mock_test.go . Queue

// Queue defines the port the HTTP handlers use to reach the queue adapter.
type Queue interface {
	Send(ctx context.Context, queueURL, body string, extra sqsadapter.Extra) (*sqs.SendMessageOutput, error)
	Receive(ctx context.Context, queueURL string, extra sqsadapter.Extra) (*sqs.ReceiveMessageOutput, error)
}

var _ Queue = (*sqsadapter.Adapter)(nil)
