package pg

import (
	"fmt"

	"github.com/iqtrace/iqtrace/internal/domain"
)

// SaveTimelog appends a room-entry record and returns it with the assigned id
// and timestamp. Timelogs are append-only; no update or delete path exists.
func (s *Storage) SaveTimelog(log domain.Timelog) (domain.Timelog, error) {
	err := s.db.QueryRow(`
        INSERT INTO timelogs(user_email, room_number)
        VALUES($1, $2) RETURNING id, (timestamp at time zone 'utc')`,
		log.UserEmail, log.RoomNumber,
	).Scan(&log.Id, &log.Timestamp)
	if err != nil {
		return domain.Timelog{}, fmt.Errorf("failed to insert timelog: %w", err)
	}
	return log, nil
}

// TimelogsByRoom lists entries for a room, newest first.
func (s *Storage) TimelogsByRoom(number domain.RoomNumber) ([]domain.Timelog, error) {
	rows, err := s.db.Query(`
        SELECT id, user_email, room_number, (timestamp at time zone 'utc')
        FROM timelogs WHERE room_number = $1 ORDER BY timestamp DESC`, number)
	if err != nil {
		return nil, fmt.Errorf("failed to query timelogs: %w", err)
	}
	defer rows.Close()

	var logs []domain.Timelog
	for rows.Next() {
		var log domain.Timelog
		if err := rows.Scan(&log.Id, &log.UserEmail, &log.RoomNumber, &log.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan timelog: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
