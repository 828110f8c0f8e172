package model

import "time"

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	Rating       float64    `json:"rating"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	IsActive     bool       `json:"is_active"`
	IsSuperuser  bool       `json:"is_superuser"`
}

// AuthUser is the request-scoped identity resolved from a verified token.
// It is never persisted.
type AuthUser struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"-"`
}

// PublicUser is the profile shape returned by sign-up and profile update.
type PublicUser struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Rating    float64    `json:"rating"`
}

func (u User) AuthUser() AuthUser {
	return AuthUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Birthdate: u.Birthdate,
		Rating:    u.Rating,
	}
}
