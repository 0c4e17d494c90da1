package service

import (
	"context"

	"github.com/iqtrace/iqtrace/internal/domain"
)

type MockAuthStorage struct {
	MockSaveUser      func(user domain.User) (domain.UserId, error)
	MockUser          func(email domain.Email) (domain.User, error)
	MockUserById      func(id domain.UserId) (domain.User, error)
	MockUsers         func() ([]domain.User, error)
	MockUpdateProfile func(user domain.User) error
	MockDeleteUser    func(id domain.UserId) error
}

func (m *MockAuthStorage) SaveUser(user domain.User) (domain.UserId, error) {
	if m.MockSaveUser != nil {
		return m.MockSaveUser(user)
	}
	return 1, nil
}

func (m *MockAuthStorage) User(email domain.Email) (domain.User, error) {
	if m.MockUser != nil {
		return m.MockUser(email)
	}
	return domain.User{Email: email}, nil
}

func (m *MockAuthStorage) UserById(id domain.UserId) (domain.User, error) {
	if m.MockUserById != nil {
		return m.MockUserById(id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockAuthStorage) Users() ([]domain.User, error) {
	if m.MockUsers != nil {
		return m.MockUsers()
	}
	return nil, nil
}

func (m *MockAuthStorage) UpdateProfile(user domain.User) error {
	if m.MockUpdateProfile != nil {
		return m.MockUpdateProfile(user)
	}
	return nil
}

func (m *MockAuthStorage) DeleteUser(id domain.UserId) error {
	if m.MockDeleteUser != nil {
		return m.MockDeleteUser(id)
	}
	return nil
}

type MockEmail struct {
	MockSend      func(recipientEmail, subject, body string) error
	MockIsCorrect func(email domain.Email) error
}

func (m *MockEmail) Send(recipientEmail, subject, body string) error {
	if m.MockSend != nil {
		return m.MockSend(recipientEmail, subject, body)
	}
	return nil
}

func (m *MockEmail) IsCorrect(email domain.Email) error {
	if m.MockIsCorrect != nil {
		return m.MockIsCorrect(email)
	}
	return nil
}

type MockJwt struct {
	MockNewToken func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.MockNewToken != nil {
		return m.MockNewToken(user)
	}
	return "token", nil
}

type MockFaceStorage struct {
	MockUser               func(email domain.Email) (domain.User, error)
	MockUpdateFaceEncoding func(email domain.Email, encoding domain.FaceEncoding) error
}

func (m *MockFaceStorage) User(email domain.Email) (domain.User, error) {
	if m.MockUser != nil {
		return m.MockUser(email)
	}
	return domain.User{Email: email}, nil
}

func (m *MockFaceStorage) UpdateFaceEncoding(email domain.Email, encoding domain.FaceEncoding) error {
	if m.MockUpdateFaceEncoding != nil {
		return m.MockUpdateFaceEncoding(email, encoding)
	}
	return nil
}

type MockExtractor struct {
	MockExtract func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error)
}

func (m *MockExtractor) Extract(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
	if m.MockExtract != nil {
		return m.MockExtract(ctx, imageData)
	}
	return domain.FaceEncoding{0.1, 0.2}, nil
}

type MockVerificationStorage struct {
	MockSaveToken    func(token domain.VerificationToken) error
	MockConsumeToken func(id string) (domain.Email, error)
	MockSetVerified  func(email domain.Email) error
}

func (m *MockVerificationStorage) SaveToken(token domain.VerificationToken) error {
	if m.MockSaveToken != nil {
		return m.MockSaveToken(token)
	}
	return nil
}

func (m *MockVerificationStorage) ConsumeToken(id string) (domain.Email, error) {
	if m.MockConsumeToken != nil {
		return m.MockConsumeToken(id)
	}
	return "", nil
}

func (m *MockVerificationStorage) SetVerified(email domain.Email) error {
	if m.MockSetVerified != nil {
		return m.MockSetVerified(email)
	}
	return nil
}

type MockRoomStorage struct {
	MockCreateRoom func(room domain.Room) error
	MockRoom       func(number domain.RoomNumber) (domain.Room, error)
	MockRooms      func() ([]domain.Room, error)
	MockDeleteRoom func(number domain.RoomNumber) error
}

func (m *MockRoomStorage) CreateRoom(room domain.Room) error {
	if m.MockCreateRoom != nil {
		return m.MockCreateRoom(room)
	}
	return nil
}

func (m *MockRoomStorage) Room(number domain.RoomNumber) (domain.Room, error) {
	if m.MockRoom != nil {
		return m.MockRoom(number)
	}
	return domain.Room{Number: number}, nil
}

func (m *MockRoomStorage) Rooms() ([]domain.Room, error) {
	if m.MockRooms != nil {
		return m.MockRooms()
	}
	return nil, nil
}

func (m *MockRoomStorage) DeleteRoom(number domain.RoomNumber) error {
	if m.MockDeleteRoom != nil {
		return m.MockDeleteRoom(number)
	}
	return nil
}

type MockTimelogStorage struct {
	MockSaveTimelog    func(log domain.Timelog) (domain.Timelog, error)
	MockTimelogsByRoom func(number domain.RoomNumber) ([]domain.Timelog, error)
}

func (m *MockTimelogStorage) SaveTimelog(log domain.Timelog) (domain.Timelog, error) {
	if m.MockSaveTimelog != nil {
		return m.MockSaveTimelog(log)
	}
	log.Id = 1
	return log, nil
}

func (m *MockTimelogStorage) TimelogsByRoom(number domain.RoomNumber) ([]domain.Timelog, error) {
	if m.MockTimelogsByRoom != nil {
		return m.MockTimelogsByRoom(number)
	}
	return nil, nil
}
