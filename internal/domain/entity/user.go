// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the account entity of the store. The username is stored only in
// normalized form (trimmed, lower-cased) and is globally unique; uniqueness
// is enforced by the storage layer, not by application logic.
type User struct {
	ID           int64     // Store-assigned identifier, immutable once created.
	Username     string    // Normalized login name, the uniqueness and lookup key.
	PasswordHash string    // Bcrypt digest of the password; never the plaintext.
	Role         Role      // Free-form role label; stored but not gated by this core.
	CreatedAt    time.Time // Set once at insertion.
}

// NormalizeUsername trims surrounding whitespace and lower-cases the given
// username. Every lookup and every stored username goes through this.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
