package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyLength is the length of the random part of the API key (in bytes before base64 encoding)
	APIKeyLength = 32
	// APIKeyPrefix starts every generated key
	APIKeyPrefix = "cfp"
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
)

// GenerateAPIKey generates a new random API key of the form cfp_<base64url>
func GenerateAPIKey() (string, error) {
	randomBytes := make([]byte, APIKeyLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", errors.Wrap(err, "failed to generate random bytes")
	}
	return APIKeyPrefix + "_" + base64.RawURLEncoding.EncodeToString(randomBytes), nil
}

// HashAPIKey hashes an API key using bcrypt, for CHART_API_KEY_HASH
func HashAPIKey(apiKey string) (string, error) {
	if apiKey == "" {
		return "", errors.New("API key must not be empty")
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), BcryptCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash API key")
	}
	return string(hashedBytes), nil
}

// MaskAPIKey keeps the prefix and first characters of a key for display
func MaskAPIKey(apiKey string) string {
	visible := apiKey
	if i := strings.Index(apiKey, "_"); i >= 0 && len(apiKey) > i+5 {
		visible = apiKey[:i+5]
	} else if len(apiKey) > 4 {
		visible = apiKey[:4]
	} else {
		return "****"
	}
	return visible + "****"
}
