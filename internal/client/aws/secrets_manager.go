package aws

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSecretNotFound is returned when neither the ARN nor the fallback yields a value.
var ErrSecretNotFound = errors.New("secret not found")

// SecretsAPI is the part of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration
// chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API.
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString fetches the secret stored at secretArn. When the ARN is
// empty or the fetch fails it falls back to fallbackValue, usually the
// matching plain environment variable.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArn string, fallbackValue string) (string, error) {
	if secretArn != "" {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager", zap.String("secretArn", secretArn))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result != nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Log.Info("Successfully fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return *result.SecretString, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArn", secretArn),
			zap.Error(err),
		)
	}

	if fallbackValue != "" {
		logger.Log.Info("Using secret value from environment")
		return fallbackValue, nil
	}

	return "", errors.Wrapf(ErrSecretNotFound, "no value at ARN %q and no fallback", secretArn)
}

// GetAPIKey resolves the chart API key. A secret stored as a JSON object is
// read from its "api_key" field, anything else is used as is.
func (c *SecretsManagerClient) GetAPIKey(ctx context.Context, secretArn string, fallbackValue string) (string, error) {
	secret, err := c.GetSecretString(ctx, secretArn, fallbackValue)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(secret)
	if !strings.HasPrefix(trimmed, "{") {
		return secret, nil
	}

	var payload struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return "", errors.Wrap(err, "failed to parse JSON secret")
	}
	if payload.APIKey == "" {
		return "", errors.Wrap(ErrSecretNotFound, "JSON secret has no api_key field")
	}
	return payload.APIKey, nil
}
