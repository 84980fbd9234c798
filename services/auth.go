package services

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/egorrya/pattaya-grad/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	// AdminSessionDuration is the lifetime of an issued admin token.
	AdminSessionDuration = time.Hour
	// adminSessionIDLength is the random session id length in bytes.
	adminSessionIDLength = 16
)

// Admin tokens have the form "<id>.<expiresUnix>.<mac>" where mac is
// HMAC-SHA256 over "<id>.<expiresUnix>" keyed by the session secret. The
// token carries no credential material: possession of the cookie does not
// reveal the admin login or password.

func adminTokenMAC(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateAdminToken issues a signed token expiring AdminSessionDuration
// after now.
func GenerateAdminToken(secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session secret is not configured")
	}

	idBytes := make([]byte, adminSessionIDLength)
	if _, err := rand.Read(idBytes); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	expires := now.Add(AdminSessionDuration).Unix()
	payload := fmt.Sprintf("%s.%d", hex.EncodeToString(idBytes), expires)
	return payload + "." + adminTokenMAC(secret, payload), nil
}

// ValidateAdminToken verifies the signature and expiry of a token.
func ValidateAdminToken(secret, token string, now time.Time) bool {
	if secret == "" || token == "" {
		return false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	payload := parts[0] + "." + parts[1]
	expected := adminTokenMAC(secret, payload)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(parts[2])) != 1 {
		return false
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false
	}
	return now.Unix() < expires
}

// VerifyAdminCredentials checks a login/password pair against the configured
// admin secrets. ADMIN_PASS may be stored as a bcrypt hash; otherwise the
// comparison is constant-time over the plaintext.
func VerifyAdminCredentials(cfg *config.Config, login, password string) bool {
	if !cfg.AdminConfigured() {
		return false
	}

	loginOK := subtle.ConstantTimeCompare([]byte(cfg.AdminUser), []byte(login)) == 1

	var passOK bool
	if isBcryptHash(cfg.AdminPass) {
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.AdminPass), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(cfg.AdminPass), []byte(password)) == 1
	}

	return loginOK && passOK
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}

// HashPassword hashes a password using bcrypt, for operators who prefer to
// store ADMIN_PASS hashed.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}
