// File: /models/user.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the single permission claim carried in the identity token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts the two known roles. An empty value means RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

type User struct {
	ID              string     `json:"id" gorm:"primaryKey;size:191"`
	DisplayName     string     `json:"display_name" gorm:"not null;size:255"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password        string     `json:"-" gorm:"not null;size:255"`
	Role            Role       `json:"role" gorm:"not null;size:20;default:user"`
	SportsInterests StringList `json:"sports_interests" gorm:"type:json"`
	AbilityLevel    string     `json:"ability_level" gorm:"size:50"`
	Location        string     `json:"location" gorm:"size:255"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (u *User) Identity() *Identity {
	return &Identity{UID: u.ID, Email: u.Email, Role: u.Role}
}

// Identity is the authenticated caller as seen by the event core.
// A nil *Identity means no one is signed in.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
