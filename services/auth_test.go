package services

import (
	"strings"
	"testing"
	"time"

	"github.com/egorrya/pattaya-grad/config"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-session-secret-0123456789abcdef"

func TestGenerateAdminToken(t *testing.T) {
	now := time.Now()

	t.Run("Token validates with the issuing secret", func(t *testing.T) {
		token, err := GenerateAdminToken(testSecret, now)
		assert.NoError(t, err)
		assert.True(t, ValidateAdminToken(testSecret, token, now))
	})

	t.Run("Token carries no credentials", func(t *testing.T) {
		token, err := GenerateAdminToken(testSecret, now)
		assert.NoError(t, err)
		assert.NotContains(t, token, testSecret)
		assert.Len(t, strings.Split(token, "."), 3)
	})

	t.Run("Requires a secret", func(t *testing.T) {
		_, err := GenerateAdminToken("", now)
		assert.Error(t, err)
	})

	t.Run("Tokens are unique per issue", func(t *testing.T) {
		a, _ := GenerateAdminToken(testSecret, now)
		b, _ := GenerateAdminToken(testSecret, now)
		assert.NotEqual(t, a, b)
	})
}

func TestValidateAdminToken(t *testing.T) {
	now := time.Now()

	t.Run("Rejects a different secret", func(t *testing.T) {
		token, _ := GenerateAdminToken(testSecret, now)
		assert.False(t, ValidateAdminToken("other-secret-other-secret-other!", token, now))
	})

	t.Run("Rejects an expired token", func(t *testing.T) {
		token, _ := GenerateAdminToken(testSecret, now)
		assert.False(t, ValidateAdminToken(testSecret, token, now.Add(AdminSessionDuration+time.Second)))
	})

	t.Run("Still valid just before expiry", func(t *testing.T) {
		token, _ := GenerateAdminToken(testSecret, now)
		assert.True(t, ValidateAdminToken(testSecret, token, now.Add(AdminSessionDuration-time.Second)))
	})

	t.Run("Rejects tampered payloads", func(t *testing.T) {
		token, _ := GenerateAdminToken(testSecret, now)
		parts := strings.Split(token, ".")
		tampered := parts[0] + ".9999999999." + parts[2]
		assert.False(t, ValidateAdminToken(testSecret, tampered, now))
	})

	t.Run("Rejects malformed tokens", func(t *testing.T) {
		assert.False(t, ValidateAdminToken(testSecret, "", now))
		assert.False(t, ValidateAdminToken(testSecret, "abc", now))
		assert.False(t, ValidateAdminToken(testSecret, "a.b", now))
	})
}

func TestVerifyAdminCredentials(t *testing.T) {
	t.Run("Plaintext password", func(t *testing.T) {
		cfg := &config.Config{AdminUser: "admin", AdminPass: "s3cret"}
		assert.True(t, VerifyAdminCredentials(cfg, "admin", "s3cret"))
		assert.False(t, VerifyAdminCredentials(cfg, "admin", "wrong"))
		assert.False(t, VerifyAdminCredentials(cfg, "other", "s3cret"))
	})

	t.Run("Bcrypt password", func(t *testing.T) {
		hash, err := HashPassword("s3cret")
		assert.NoError(t, err)

		cfg := &config.Config{AdminUser: "admin", AdminPass: hash}
		assert.True(t, VerifyAdminCredentials(cfg, "admin", "s3cret"))
		assert.False(t, VerifyAdminCredentials(cfg, "admin", hash))
		assert.False(t, VerifyAdminCredentials(cfg, "admin", "wrong"))
	})

	t.Run("Unconfigured credentials always fail", func(t *testing.T) {
		cfg := &config.Config{}
		assert.False(t, VerifyAdminCredentials(cfg, "", ""))
		assert.False(t, VerifyAdminCredentials(cfg, "admin", "s3cret"))
	})
}
