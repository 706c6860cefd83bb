package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// weakPasswords are well-known defaults we refuse to accept as the bootstrap
// admin credential, even pre-hashed.
var weakPasswords = []string{
	"password",
	"admin",
	"admin123",
	"changeme",
	"letmein",
	"123456",
	"12345678",
	"qwerty",
	"secret",
}

// ValidateBootstrapHash checks that the bootstrap admin password hash is a
// plausible bcrypt hash and is not the hash of a deny-listed password. There
// is deliberately no auto-created default account: boot fails instead.
func ValidateBootstrapHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("ADMIN_BOOTSTRAP_PASSWORD_HASH is required; no default admin account is created")
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
		return fmt.Errorf("ADMIN_BOOTSTRAP_PASSWORD_HASH must be a bcrypt hash")
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return fmt.Errorf("ADMIN_BOOTSTRAP_PASSWORD_HASH is not a valid bcrypt hash: %w", err)
	}
	if cost < bcrypt.DefaultCost {
		return fmt.Errorf("ADMIN_BOOTSTRAP_PASSWORD_HASH cost %d is below the minimum %d", cost, bcrypt.DefaultCost)
	}
	for _, weak := range weakPasswords {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(weak)) == nil {
			return fmt.Errorf("ADMIN_BOOTSTRAP_PASSWORD_HASH matches a well-known password; refusing to boot")
		}
	}
	return nil
}
