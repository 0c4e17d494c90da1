package domain

import "time"

// VerificationToken is a single-use opaque identifier proving control of an
// email address. A consumed token is represented by row absence, not a flag.
type VerificationToken struct {
	Id        string    `json:"id"`
	Email     Email     `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
