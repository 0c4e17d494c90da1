package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iqtrace/iqtrace/internal/domain"
	internal_errors "github.com/iqtrace/iqtrace/internal/errors"
	"github.com/lib/pq"
)

const userColumns = `id, email, password_hash, is_admin, is_verified, first_name, last_name,
	contact_number, birthday, address, face_encoding, temperature, survey, (created at time zone 'utc')`

// =========================================================================
// Public methods (satisfy the service storage interfaces)
// =========================================================================

// SaveUser inserts a new user record inside a transaction and returns its id.
func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id domain.UserId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveUser(tx, user)
		return err
	})
	return id, err
}

// User fetches a user by email using the main connection pool.
func (s *Storage) User(email domain.Email) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns), email))
}

// UserById fetches a user by primary key.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.scanUser(s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns), id))
}

// Users lists all users, newest first.
func (s *Storage) Users() ([]domain.User, error) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT %s FROM users ORDER BY created DESC", userColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := s.scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateProfile updates the mutable profile fields of a user addressed by
// email. Email and is_admin are immutable here on purpose.
func (s *Storage) UpdateProfile(user domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateProfile(tx, user)
	})
}

// UpdateFaceEncoding fully replaces the stored encoding. A previous encoding
// is overwritten, never merged.
func (s *Storage) UpdateFaceEncoding(email domain.Email, encoding domain.FaceEncoding) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateFaceEncoding(tx, email, encoding)
	})
}

// SetVerified flips the user's verified flag.
func (s *Storage) SetVerified(email domain.Email) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.setVerified(tx, email)
	})
}

// DeleteUser removes a user by id.
func (s *Storage) DeleteUser(id domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteUser(tx, id)
	})
}

// =========================================================================
// Internal methods (core database logic, transaction-agnostic)
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.UserId, error) {
	survey, err := marshalSurvey(user.Survey)
	if err != nil {
		return -1, err
	}

	var id domain.UserId
	err = q.QueryRow(`
        INSERT INTO users(email, password_hash, is_admin, first_name, last_name, contact_number, birthday, address, survey)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		user.Email, user.PassHash, user.Admin, user.FirstName, user.LastName,
		user.ContactNumber, user.Birthday, user.Address, survey,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return -1, &internal_errors.ErrorWithStatusCode{Message: "Email is already taken", StatusCode: http.StatusForbidden}
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) updateProfile(q Querier, user domain.User) error {
	survey, err := marshalSurvey(user.Survey)
	if err != nil {
		return err
	}

	result, err := q.Exec(`
        UPDATE users SET first_name = $1, last_name = $2, contact_number = $3,
            birthday = $4, address = $5, temperature = $6, survey = $7
        WHERE email = $8`,
		user.FirstName, user.LastName, user.ContactNumber, user.Birthday,
		user.Address, user.Temperature, survey, user.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return requireAffected(result, "User not found")
}

func (s *Storage) updateFaceEncoding(q Querier, email domain.Email, encoding domain.FaceEncoding) error {
	result, err := q.Exec("UPDATE users SET face_encoding = $1 WHERE email = $2", pq.Array(encoding), email)
	if err != nil {
		return fmt.Errorf("failed to update face encoding: %w", err)
	}
	return requireAffected(result, "User not found")
}

func (s *Storage) setVerified(q Querier, email domain.Email) error {
	result, err := q.Exec("UPDATE users SET is_verified = TRUE WHERE email = $1", email)
	if err != nil {
		return fmt.Errorf("failed to set verified flag: %w", err)
	}
	return requireAffected(result, "User not found")
}

func (s *Storage) deleteUser(q Querier, id domain.UserId) error {
	result, err := q.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireAffected(result, "User not found")
}

// =========================================================================
// Row scanning helpers
// =========================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanUser(row *sql.Row) (domain.User, error) {
	user, err := s.scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Storage) scanUserRow(row rowScanner) (domain.User, error) {
	var user domain.User
	var encoding pq.Float64Array
	var temperature sql.NullFloat64
	var survey []byte

	err := row.Scan(&user.Id, &user.Email, &user.PassHash, &user.Admin, &user.Verified,
		&user.FirstName, &user.LastName, &user.ContactNumber, &user.Birthday, &user.Address,
		&encoding, &temperature, &survey, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("failed to scan user: %w", err)
	}

	user.FaceEncoding = []float64(encoding)
	if temperature.Valid {
		user.Temperature = &temperature.Float64
	}
	if len(survey) > 0 {
		if err := json.Unmarshal(survey, &user.Survey); err != nil {
			return domain.User{}, fmt.Errorf("failed to unmarshal survey: %w", err)
		}
	}
	return user, nil
}

func marshalSurvey(survey map[string]string) (any, error) {
	if survey == nil {
		return nil, nil
	}
	data, err := json.Marshal(survey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal survey: %w", err)
	}
	return data, nil
}

func requireAffected(result sql.Result, notFoundMsg string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: notFoundMsg, StatusCode: http.StatusNotFound}
	}
	return nil
}
