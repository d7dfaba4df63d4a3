package database

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Settings is the subset of service configuration the DynamoDB client needs.
type Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint is optional; e.g. http://dynamodb:8000 for DynamoDB Local.
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client for the given settings.
func ConnectDynamoDB(ctx context.Context, s Settings, log *zap.Logger) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(s.Endpoint)
	if log != nil {
		log.Info("dynamodb client ready", zap.String("region", cfg.Region), zap.String("endpoint", endpoint))
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, s Settings) (aws.Config, error) {
	region := defaultString(s.Region, "us-east-1")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		defaultString(s.AccessKeyID, "local"),
		defaultString(s.SecretAccessKey, "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

func defaultString(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
