package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/iqtrace/iqtrace/internal/domain"
	internal_errors "github.com/iqtrace/iqtrace/internal/errors"
)

// SaveToken creates a pending verification token. The unique constraint on
// email is the correctness mechanism for concurrent issues: the loser of the
// race gets the duplicate condition, not a second live token.
func (s *Storage) SaveToken(token domain.VerificationToken) error {
	_, err := s.db.Exec("INSERT INTO verification_tokens(id, email) VALUES($1, $2)", token.Id, token.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return &internal_errors.ErrorWithStatusCode{Message: "Verification already exists for this email", StatusCode: http.StatusForbidden}
		}
		return fmt.Errorf("failed to insert verification token: %w", err)
	}
	return nil
}

// ConsumeToken atomically deletes the token and returns its email. A token
// that was already consumed (or never existed) is indistinguishable by
// design: consumed state is row absence.
func (s *Storage) ConsumeToken(id string) (domain.Email, error) {
	var email domain.Email
	err := s.db.QueryRow("DELETE FROM verification_tokens WHERE id = $1 RETURNING email", id).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.ErrorWithStatusCode{Message: "Verification token not found", StatusCode: http.StatusNotFound}
		}
		return "", fmt.Errorf("failed to consume verification token: %w", err)
	}
	return email, nil
}
