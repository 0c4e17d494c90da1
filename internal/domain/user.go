package domain

import (
	"strings"
	"time"
)

type User struct {
	Id            UserId            `json:"id"`
	Email         Email             `json:"email"`
	PassHash      string            `json:"-"`
	Admin         bool              `json:"is_admin"`
	Verified      bool              `json:"is_verified"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	ContactNumber string            `json:"contact_number"`
	Birthday      string            `json:"birthday"`
	Address       string            `json:"address"`
	FaceEncoding  FaceEncoding      `json:"face_encoding,omitempty"`
	Temperature   *float64          `json:"temperature,omitempty"`
	Survey        map[string]string `json:"survey,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NormalizeEmail compensates for client-side url-encoding quirks: a literal
// "+" arrives as a space. Trims first, then replaces internal spaces, so a
// trailing space disappears instead of becoming "+".
func NormalizeEmail(email Email) Email {
	return strings.ReplaceAll(strings.TrimSpace(email), " ", "+")
}
