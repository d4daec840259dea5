// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (storage, repo, session, router).
package domain

// User is a registered account. Identity is Email, matched case-sensitively.
// Users are append-only: never mutated, never deleted.
//
// Password is stored in plaintext. There is no real authentication in this
// application — the login check is a literal string comparison.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
