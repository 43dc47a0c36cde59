package model

import "time"

// Role values stored in users.role. New accounts default to standard;
// admin is only ever assigned through the user management API.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// Status values stored in users.status.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a credential record as stored in the `users` table.
// Each field corresponds to a column. PasswordHash is the bcrypt digest
// of the plaintext password and must never be serialized to a client;
// handlers define their own response types without it.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – users.role (admin or standard).
//  Status       – users.status (active or inactive).
//  JoinDate     – when the account was created. Informational only.
//  LastLogin    – last recorded login. Informational only; the login
//                 path does not update it (matches the legacy service).
type User struct {
	ID           uint64     // users.id
	Username     string     // users.username
	Email        string     // users.email
	PasswordHash string     // users.password_hash
	Role         string     // users.role
	Status       string     // users.status
	JoinDate     time.Time  // users.join_date
	LastLogin    *time.Time // users.last_login (nullable)
}
