package domain

import "time"

// Role enumerates account roles. Only administrators exist in this system.
type Role string

const RoleAdmin Role = "ADMIN"

// User mirrors the persisted representation in the users table. Accounts are
// created by provisioning only and never deleted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}
