package auth

import (
	"context"
	"testing"

	"github.com/cofipei/chart-api/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticKeyVerifier(t *testing.T) {
	v, err := NewStaticKeyVerifier("s3cr3t-Key")
	require.NoError(t, err)

	tests := []struct {
		credential string
		want       bool
	}{
		{"s3cr3t-Key", true},
		{"", false},
		{"s3cr3t-key", false},
		{"S3CR3T-KEY", false},
		{"s3cr3t-Key ", false},
		{"s3cr3t", false},
		{"something-else", false},
	}

	for _, tt := range tests {
		t.Run(tt.credential, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.credential))
		})
	}
}

func TestStaticKeyVerifier_EmptySecret(t *testing.T) {
	_, err := NewStaticKeyVerifier("")
	assert.ErrorIs(t, err, ErrEmptySecret)

	var zero StaticKeyVerifier
	assert.False(t, zero.Verify(""))
	assert.False(t, zero.Verify("anything"))
}

func TestHashedKeyVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-key"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewHashedKeyVerifier(string(hash))
	require.NoError(t, err)

	assert.True(t, v.Verify("hashed-key"))
	assert.False(t, v.Verify("Hashed-Key"))
	assert.False(t, v.Verify(""))

	_, err = NewHashedKeyVerifier("plain-text")
	assert.ErrorIs(t, err, ErrInvalidKeyHash)
}

type fakeSecrets struct {
	key string
	err error
	arn string
}

func (f *fakeSecrets) GetAPIKey(ctx context.Context, secretArn string, fallbackValue string) (string, error) {
	f.arn = secretArn
	return f.key, f.err
}

func TestNewVerifierFromConfig(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("hash wins", func(t *testing.T) {
		v, err := NewVerifierFromConfig(context.Background(), &config.Config{APIKey: "plain", APIKeyHash: string(hash)}, nil)
		require.NoError(t, err)
		assert.IsType(t, &HashedKeyVerifier{}, v)
		assert.True(t, v.Verify("from-hash"))
		assert.False(t, v.Verify("plain"))
	})

	t.Run("plain key", func(t *testing.T) {
		v, err := NewVerifierFromConfig(context.Background(), &config.Config{APIKey: "plain"}, nil)
		require.NoError(t, err)
		assert.True(t, v.Verify("plain"))
	})

	t.Run("key from secrets manager", func(t *testing.T) {
		secrets := &fakeSecrets{key: "from-aws"}
		v, err := NewVerifierFromConfig(context.Background(), &config.Config{APIKeyARN: "arn:x"}, secrets)
		require.NoError(t, err)
		assert.Equal(t, "arn:x", secrets.arn)
		assert.True(t, v.Verify("from-aws"))
	})

	t.Run("secrets failure", func(t *testing.T) {
		_, err := NewVerifierFromConfig(context.Background(), &config.Config{APIKeyARN: "arn:x"}, &fakeSecrets{err: errors.New("denied")})
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("arn without client", func(t *testing.T) {
		_, err := NewVerifierFromConfig(context.Background(), &config.Config{APIKeyARN: "arn:x"}, nil)
		assert.Error(t, err)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := NewVerifierFromConfig(context.Background(), &config.Config{}, nil)
		assert.ErrorIs(t, err, ErrEmptySecret)
	})
}
