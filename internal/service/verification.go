package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iqtrace/iqtrace/internal/config"
	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/logger"
)

// to mock service in tests
type VerificationService interface {
	Issue(email domain.Email) error
	Consume(tokenId string) (domain.Email, error)
}

type Verification struct {
	storage VerificationStorage
	email   Email
	cfg     *config.Config
}

type VerificationStorage interface {
	SaveToken(token domain.VerificationToken) error
	ConsumeToken(id string) (domain.Email, error)
	SetVerified(email domain.Email) error
}

func NewVerification(storage VerificationStorage, email Email, cfg *config.Config) *Verification {
	return &Verification{storage, email, cfg}
}

// Issue creates a pending token for the email and mails its verification
// link. At most one pending token can exist per email; the storage unique
// constraint enforces that even for racing calls.
func (v *Verification) Issue(email domain.Email) error {
	email = domain.NormalizeEmail(email)

	if err := v.email.IsCorrect(email); err != nil {
		return err
	}

	token := domain.VerificationToken{Id: uuid.NewString(), Email: email}
	if err := v.storage.SaveToken(token); err != nil {
		return err
	}

	body := fmt.Sprintf(`
		Please click on the link below to verify your email address.

		%s/verification/%s

		If you did not request this, please ignore this email.
	`, v.cfg.Public.PublicURL, token.Id)

	if err := v.email.Send(email, "Email Verification", body); err != nil {
		return err
	}
	return nil
}

// Consume resolves the token exactly once: the storage lookup and delete are
// one atomic step, then the owning user is marked verified. Reissue after
// consumption works because the pending token is gone.
func (v *Verification) Consume(tokenId string) (domain.Email, error) {
	email, err := v.storage.ConsumeToken(tokenId)
	if err != nil {
		return "", err
	}

	if err := v.storage.SetVerified(email); err != nil {
		logger.Log.Error("token consumed but user not marked verified", "email", email, "error", err)
		return "", err
	}
	return email, nil
}
