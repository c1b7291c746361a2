package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// Settings describes how to build an AWS SDK configuration.
type Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the service endpoint, e.g. a LocalStack URL.
	Endpoint string
}

// NewConfig creates a new AWS configuration from the given settings.
//
// Static credentials are only used when both the access key id and the secret
// key are present. Otherwise the SDK default credential chain applies
// (environment, shared files, IAM role for service accounts, ...). Loading the
// configuration does not reach the network: credentials are resolved lazily on
// the first request.
func NewConfig(ctx context.Context, s Settings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = DefaultRegion
	}

	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(region),
	}

	if provider := credentialsProvider(s); provider != nil {
		opts = append(opts, awsConfig.WithCredentialsProvider(provider))
	}

	if s.Endpoint != "" {
		opts = append(opts, awsConfig.WithBaseEndpoint(s.Endpoint))
	}

	return awsConfig.LoadDefaultConfig(ctx, opts...)
}

// credentialsProvider returns a static provider for a complete key pair and
// nil for anything else, so half a pair never reaches the SDK.
func credentialsProvider(s Settings) aws.CredentialsProvider {
	if s.AccessKeyID == "" || s.SecretAccessKey == "" {
		return nil
	}

	return credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")
}
