package model

import (
	"time"

	"gorm.io/datatypes"
)

// Principal roles carried in token claims.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Admin represents a back-office administrator account.
type Admin struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// Preferences holds per-user reading preferences stored as a JSON column.
type Preferences struct {
	DarkMode   bool   `json:"darkMode"`
	FontSize   string `json:"fontSize"`
	FontFamily string `json:"fontFamily"`
	AutoPlay   bool   `json:"autoPlay"`
}

// DefaultPreferences returns the preferences assigned to newly registered users.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:   false,
		FontSize:   "medium",
		FontFamily: "Lato",
		AutoPlay:   false,
	}
}

// User represents a reader account.
type User struct {
	ID                 int64                              `json:"id" gorm:"primaryKey;autoIncrement"`
	Email              string                             `json:"email" gorm:"uniqueIndex;not null"`
	Name               string                             `json:"name" gorm:"not null"`
	PasswordHash       string                             `json:"-" gorm:"not null"`
	Avatar             *string                            `json:"avatar"`
	Preferences        datatypes.JSONType[Preferences]    `json:"preferences"`
	IsPremium          bool                               `json:"isPremium" gorm:"default:false"`
	SubscriptionEndsAt *time.Time                         `json:"subscriptionEndsAt"`
	CreatedAt          time.Time                          `json:"createdAt"`
	UpdatedAt          time.Time                          `json:"updatedAt"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request. Username carries the admin username
// or the user's email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileResponse represents principal data safe for API responses. Admin
// profiles carry only id, name and role; user profiles include the rest.
type ProfileResponse struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email,omitempty"`
	Role               string       `json:"role"`
	Preferences        *Preferences `json:"preferences,omitempty"`
	IsPremium          *bool        `json:"isPremium,omitempty"`
	SubscriptionEndsAt *time.Time   `json:"subscriptionEndsAt,omitempty"`
}

// AuthResponse represents an authentication response with a signed token.
type AuthResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// SubscribeRequest represents a payment-plan selection.
type SubscribeRequest struct {
	Plan string `json:"plan"`
}

// SubscribeResponse reports the premium flag after a plan purchase.
type SubscribeResponse struct {
	Success            bool      `json:"success"`
	IsPremium          bool      `json:"isPremium"`
	SubscriptionEndsAt time.Time `json:"subscriptionEndsAt"`
}
