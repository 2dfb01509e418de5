package entities

import (
	"time"
)

// User represents an app user. Only the seeded default user exists today.
type User struct {
	ID                int64     `json:"id" yaml:"id" db:"id"`
	Username          string    `json:"username" yaml:"username" db:"username"`
	Email             string    `json:"email" yaml:"email" db:"email"`
	Password          string    `json:"-" yaml:"password" db:"-"` // never serialised
	Name              string    `json:"name" yaml:"name" db:"name"`
	Avatar            *string   `json:"avatar" yaml:"avatar" db:"avatar"`
	PreferredLanguage string    `json:"preferredLanguage" yaml:"preferredLanguage" db:"preferred_language"`
	CreatedAt         time.Time `json:"createdAt" yaml:"createdAt" db:"created_at"`
}

// DefaultLanguage is applied when a user has no language preference.
const DefaultLanguage = "en"

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }
