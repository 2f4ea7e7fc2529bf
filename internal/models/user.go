// Package models defines the entity types shared by services and
// repositories.
package models

import "time"

// User is a registered account. Email is unique case-insensitively and is
// stored lowercased. Users are never deleted in-app.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
	IsVerified  bool      `json:"is_verified"`
}
