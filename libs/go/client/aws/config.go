package aws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig loads the AWS SDK config. In local development a LocalStack
// style endpoint can be pointed at via AWS_ENDPOINT_URL_LOCAL together with
// dummy static credentials, so the audit queue works without real AWS.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	if endpoint := os.Getenv("AWS_ENDPOINT_URL_LOCAL"); endpoint != "" {
		return config.LoadDefaultConfig(ctx,
			config.WithRegion(getEnvWithDefault("AWS_REGION", "us-east-1")),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", ""),
			),
			config.WithBaseEndpoint(endpoint),
		)
	}

	return config.LoadDefaultConfig(ctx)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
