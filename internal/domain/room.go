package domain

import "time"

type Room struct {
	Number    RoomNumber `json:"number"`
	Name      string     `json:"name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Timelog records a user entering a room. Append-only.
type Timelog struct {
	Id         int64      `json:"id"`
	UserEmail  Email      `json:"user_email"`
	RoomNumber RoomNumber `json:"room_number"`
	Timestamp  time.Time  `json:"timestamp"`
}
