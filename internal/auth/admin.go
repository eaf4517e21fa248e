package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// CredentialChecker verifies the single shared admin credential.
// The configured password may be plaintext or a bcrypt hash.
type CredentialChecker struct {
	username string
	password string
	hashed   bool
}

// NewCredentialChecker creates a checker for the given admin username and
// password. Passwords starting with a bcrypt prefix are treated as hashes.
func NewCredentialChecker(username, password string) *CredentialChecker {
	return &CredentialChecker{
		username: username,
		password: password,
		hashed:   isBcryptHash(password),
	}
}

// Check compares the presented credentials with the configured ones.
// Returns domain.ErrUnauthorized on any mismatch.
func (c *CredentialChecker) Check(username, password string) (ctxutil.AdminPrincipal, error) {
	if c.username == "" || c.password == "" || username == "" || password == "" {
		return ctxutil.AdminPrincipal{}, domain.ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(c.username), []byte(username)) == 1

	var passOK bool
	if c.hashed {
		err := bcrypt.CompareHashAndPassword([]byte(c.password), []byte(password))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ctxutil.AdminPrincipal{}, fmt.Errorf("compare admin password: %w", err)
		}
		passOK = err == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(c.password), []byte(password)) == 1
	}

	if !userOK || !passOK {
		return ctxutil.AdminPrincipal{}, domain.ErrUnauthorized
	}
	return ctxutil.AdminPrincipal{Username: c.username}, nil
}

// HashPassword returns a bcrypt hash suitable for the ADMIN_PASS setting.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", domain.NewValidationError("password", "required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
