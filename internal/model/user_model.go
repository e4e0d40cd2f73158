package model

import "time"

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never JSON-encode
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
