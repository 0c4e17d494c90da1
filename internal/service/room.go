package service

import (
	"net/http"

	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/errors"
)

// to mock service in tests
type RoomService interface {
	Create(room domain.Room) error
	Get(number domain.RoomNumber) (domain.Room, error)
	List() ([]domain.Room, error)
	Delete(number domain.RoomNumber) error
}

type Room struct {
	storage RoomStorage
}

type RoomStorage interface {
	CreateRoom(room domain.Room) error
	Room(number domain.RoomNumber) (domain.Room, error)
	Rooms() ([]domain.Room, error)
	DeleteRoom(number domain.RoomNumber) error
}

func NewRoom(storage RoomStorage) *Room {
	return &Room{storage}
}

func (r *Room) Create(room domain.Room) error {
	if room.Number <= 0 {
		return &errors.ErrorWithStatusCode{Message: "Room number must be positive", StatusCode: http.StatusBadRequest}
	}
	return r.storage.CreateRoom(room)
}

func (r *Room) Get(number domain.RoomNumber) (domain.Room, error) {
	return r.storage.Room(number)
}

func (r *Room) List() ([]domain.Room, error) {
	return r.storage.Rooms()
}

func (r *Room) Delete(number domain.RoomNumber) error {
	return r.storage.DeleteRoom(number)
}
