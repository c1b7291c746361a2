// Package sqsadapter exposes a small send/receive surface over an AWS SQS client.
// Results and service errors are handed back exactly as the client produced them.
package sqsadapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog/log"

	awsconfig "queue.service/pkg/aws"
	"queue.service/pkg/telemetry"
)

// ErrMissingParameters is returned by Send when the queue URL or the message body is empty.
var ErrMissingParameters = errors.New("queueUrl and message are required parameters")

//go:generate go tool moq -pkg sqsadapter_test -stub -out client_mock_test.go . Client

// Client defines the AWS SQS methods used by the Adapter.
type Client interface {
	SendMessage(
		ctx context.Context,
		params *sqs.SendMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.SendMessageOutput, error)
	ReceiveMessage(
		ctx context.Context,
		params *sqs.ReceiveMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.ReceiveMessageOutput, error)
}

// Options configure how New obtains its client.
type Options struct {
	// Client is used as is when set. Every other field is then ignored.
	Client Client

	// AccessKeyID and SecretAccessKey are only used when both are set,
	// otherwise the SDK default credential chain applies.
	AccessKeyID     string
	SecretAccessKey string

	// Region defaults to us-east-1.
	Region string

	// Endpoint overrides the service endpoint, e.g. a LocalStack URL.
	Endpoint string
}

// Adapter sends and receives SQS messages through a single client.
// It is safe for concurrent use.
type Adapter struct {
	client Client
}

// New creates an Adapter. No network call is made.
func New(ctx context.Context, opts Options) (*Adapter, error) {
	if opts.Client != nil {
		return NewWithClient(opts.Client), nil
	}

	cfg, err := awsconfig.NewConfig(ctx, awsconfig.Settings{
		Region:          opts.Region,
		AccessKeyID:     opts.AccessKeyID,
		SecretAccessKey: opts.SecretAccessKey,
		Endpoint:        opts.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sqs client: %w", err)
	}

	return NewWithClient(sqs.NewFromConfig(cfg)), nil
}

// NewWithClient creates an Adapter around an existing client.
func NewWithClient(client Client) *Adapter {
	return &Adapter{client: client}
}

// Send posts body to the queue at queueURL. Fields in extra are merged into
// the request after QueueUrl and MessageBody and take precedence over them.
func (a *Adapter) Send(ctx context.Context, queueURL, body string, extra Extra) (*sqs.SendMessageOutput, error) {
	if queueURL == "" || body == "" {
		return nil, ErrMissingParameters
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(body),
	}
	if err := extra.apply(opSend, input); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartQueueSpan(ctx, "sqs.send", aws.ToString(input.QueueUrl))
	defer span.End()

	out, err := a.client.SendMessage(ctx, input)
	if err != nil {
		telemetry.RecordError(span, err)
		log.Ctx(ctx).Error().Err(err).Str("queue_url", aws.ToString(input.QueueUrl)).Msg("Failed to send message")
		return nil, err
	}

	return out, nil
}

// Receive performs a single ReceiveMessage call on the queue at queueURL.
// The queue URL is not checked locally, the SDK validates required fields.
func (a *Adapter) Receive(ctx context.Context, queueURL string, extra Extra) (*sqs.ReceiveMessageOutput, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl: aws.String(queueURL),
	}
	if err := extra.apply(opReceive, input); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartQueueSpan(ctx, "sqs.receive", aws.ToString(input.QueueUrl))
	defer span.End()

	out, err := a.client.ReceiveMessage(ctx, input)
	if err != nil {
		telemetry.RecordError(span, err)
		log.Ctx(ctx).Error().Err(err).Str("queue_url", aws.ToString(input.QueueUrl)).Msg("Failed to receive message")
		return nil, err
	}

	return out, nil
}
