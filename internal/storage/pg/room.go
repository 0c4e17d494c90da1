package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iqtrace/iqtrace/internal/domain"
	internal_errors "github.com/iqtrace/iqtrace/internal/errors"
)

// CreateRoom inserts a room. Number and name are each unique; a collision on
// either surfaces as the same duplicate condition.
func (s *Storage) CreateRoom(room domain.Room) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var name any
		if room.Name != "" {
			name = room.Name
		}
		_, err := tx.Exec("INSERT INTO rooms(number, name) VALUES($1, $2)", room.Number, name)
		if err != nil {
			if isUniqueViolation(err) {
				return &internal_errors.ErrorWithStatusCode{Message: "Room with this number or name already exists", StatusCode: http.StatusForbidden}
			}
			return fmt.Errorf("failed to insert room: %w", err)
		}
		return nil
	})
}

// Room fetches a room by number.
func (s *Storage) Room(number domain.RoomNumber) (domain.Room, error) {
	var room domain.Room
	var name sql.NullString
	err := s.db.QueryRow("SELECT number, name, (created at time zone 'utc') FROM rooms WHERE number = $1", number).
		Scan(&room.Number, &name, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, &internal_errors.ErrorWithStatusCode{Message: "Room not found", StatusCode: http.StatusNotFound}
		}
		return domain.Room{}, fmt.Errorf("failed to query room: %w", err)
	}
	room.Name = name.String
	return room, nil
}

// Rooms lists all rooms ordered by number.
func (s *Storage) Rooms() ([]domain.Room, error) {
	rows, err := s.db.Query("SELECT number, name, (created at time zone 'utc') FROM rooms ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		var name sql.NullString
		if err := rows.Scan(&room.Number, &name, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		room.Name = name.String
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// DeleteRoom removes a room by number.
func (s *Storage) DeleteRoom(number domain.RoomNumber) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM rooms WHERE number = $1", number)
		if err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}
		return requireAffected(result, "Room not found")
	})
}
