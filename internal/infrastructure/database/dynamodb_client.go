package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const defaultRegion = "us-east-1"

// DynamoDBSettings locates the journal table's DynamoDB. Endpoint is only set for
// DynamoDB Local.
type DynamoDBSettings struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// ConnectDynamoDB creates the DynamoDB client backing the transaction journal.
//
// Env vars supported (through config):
// - AWS_REGION (default: us-east-1)
// - DYNAMODB_ENDPOINT (optional; e.g. http://localhost:8000)
// - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (static keys, "local" when an endpoint is set)
func ConnectDynamoDB(ctx context.Context, settings DynamoDBSettings, logger *zap.Logger) (*dynamodb.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg, err := NewDynamoDBConfig(ctx, settings)
	if err != nil {
		logger.Error("[journal][dynamodb] failed to create config", zap.Error(err))
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	logger.Info("[journal][dynamodb] client ready",
		zap.String("region", cfg.Region),
		zap.Bool("custom_endpoint", settings.Endpoint != ""),
	)
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		}
	}), nil
}

// NewDynamoDBConfig loads the AWS config. Without static keys the default credential
// chain is used, except against DynamoDB Local which still needs some key pair.
func NewDynamoDBConfig(ctx context.Context, settings DynamoDBSettings) (aws.Config, error) {
	region := settings.Region
	if region == "" {
		region = defaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	access, secret := settings.AccessKey, settings.SecretKey
	if settings.Endpoint != "" {
		if access == "" {
			access = "local"
		}
		if secret == "" {
			secret = "local"
		}
	}
	if access != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(access, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
