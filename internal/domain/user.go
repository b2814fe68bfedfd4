package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é a conta da dona do estúdio (ou assistente) que acessa o painel
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	AvatarURL    *string   `json:"avatarUrl,omitempty"`
	StudioName   string    `json:"studioName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile é a visão pública do usuário, sem o hash da senha
type Profile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Active     bool    `json:"active"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
	StudioName string  `json:"studioName,omitempty"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Active:     u.Active,
		AvatarURL:  u.AvatarURL,
		StudioName: u.StudioName,
	}
}

// Session é a sessão corrente extraída de um token válido
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	TokenID   string    `json:"tokenId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Claims struct {
	UserID    string
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}

func (c *Claims) Session() *Session {
	session := &Session{
		UserID:  c.UserID,
		Email:   c.UserEmail,
		Name:    c.UserName,
		TokenID: c.ID,
	}
	if c.ExpiresAt != nil {
		session.ExpiresAt = c.ExpiresAt.Time
	}
	return session
}
