package auth

import (
	"context"
	"crypto/subtle"

	"github.com/cofipei/chart-api/internal/config"
	"github.com/cofipei/chart-api/internal/interfaces"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// StaticKeyVerifier accepts exactly one configured secret.
type StaticKeyVerifier struct {
	secret []byte
}

// NewStaticKeyVerifier creates a verifier for secret. An empty secret is rejected.
func NewStaticKeyVerifier(secret string) (*StaticKeyVerifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &StaticKeyVerifier{secret: []byte(secret)}, nil
}

// Verify compares credential with the secret in constant time.
func (v *StaticKeyVerifier) Verify(credential string) bool {
	if v == nil || len(v.secret) == 0 || credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), v.secret) == 1
}

// Secret returns the configured key. Only the demo key endpoint uses it.
func (v *StaticKeyVerifier) Secret() string {
	return string(v.secret)
}

// HashedKeyVerifier accepts any credential matching a bcrypt hash.
type HashedKeyVerifier struct {
	hash []byte
}

// NewHashedKeyVerifier creates a verifier for a bcrypt hash.
func NewHashedKeyVerifier(hash string) (*HashedKeyVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, errors.Wrap(ErrInvalidKeyHash, err.Error())
	}
	return &HashedKeyVerifier{hash: []byte(hash)}, nil
}

// Verify reports whether credential hashes to the stored value.
func (v *HashedKeyVerifier) Verify(credential string) bool {
	if v == nil || credential == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(credential)) == nil
}

// SecretSource resolves the plain API key, from Secrets Manager or the environment.
type SecretSource interface {
	GetAPIKey(ctx context.Context, secretArn string, fallbackValue string) (string, error)
}

// NewVerifierFromConfig picks the verifier for cfg. A bcrypt hash wins over a
// plain key; the plain key is read through secrets when an ARN is configured.
func NewVerifierFromConfig(ctx context.Context, cfg *config.Config, secrets SecretSource) (interfaces.APIKeyVerifier, error) {
	if cfg.APIKeyHash != "" {
		hashed, err := NewHashedKeyVerifier(cfg.APIKeyHash)
		if err != nil {
			return nil, err
		}
		return hashed, nil
	}

	secret := cfg.APIKey
	if cfg.APIKeyARN != "" {
		if secrets == nil {
			return nil, errors.New("CHART_API_KEY_ARN is set but no secrets client is available")
		}
		resolved, err := secrets.GetAPIKey(ctx, cfg.APIKeyARN, cfg.APIKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve API key")
		}
		secret = resolved
	}

	static, err := NewStaticKeyVerifier(secret)
	if err != nil {
		return nil, err
	}
	return static, nil
}
