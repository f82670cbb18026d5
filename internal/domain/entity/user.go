package entity

import "time"

// Role constants stored in users.role and carried in JWT claims.
const (
	// RoleAdmin has full access, including write operations.
	RoleAdmin = "admin"
	// RoleViewer has read-only access.
	RoleViewer = "viewer"
)

// User is an authenticated principal. Passwords are stored as bcrypt hashes;
// the plaintext never leaves the auth service.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string // "admin" or "viewer"
	CreatedAt    time.Time
}
