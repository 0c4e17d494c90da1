package service

import (
	"github.com/iqtrace/iqtrace/internal/domain"
)

// to mock service in tests
type TimelogService interface {
	Create(email domain.Email, roomNumber domain.RoomNumber) (domain.Timelog, error)
	ListByRoom(number domain.RoomNumber) ([]domain.Timelog, error)
}

type Timelog struct {
	storage TimelogStorage
	rooms   RoomStorage
}

type TimelogStorage interface {
	SaveTimelog(log domain.Timelog) (domain.Timelog, error)
	TimelogsByRoom(number domain.RoomNumber) ([]domain.Timelog, error)
}

func NewTimelog(storage TimelogStorage, rooms RoomStorage) *Timelog {
	return &Timelog{storage, rooms}
}

// Create appends a room-entry record. The room must exist; the user reference
// is deliberately not cross-checked, keeping the lenient source behavior.
func (t *Timelog) Create(email domain.Email, roomNumber domain.RoomNumber) (domain.Timelog, error) {
	if _, err := t.rooms.Room(roomNumber); err != nil {
		return domain.Timelog{}, err
	}

	return t.storage.SaveTimelog(domain.Timelog{
		UserEmail:  domain.NormalizeEmail(email),
		RoomNumber: roomNumber,
	})
}

func (t *Timelog) ListByRoom(number domain.RoomNumber) ([]domain.Timelog, error) {
	if _, err := t.rooms.Room(number); err != nil {
		return nil, err
	}
	return t.storage.TimelogsByRoom(number)
}
