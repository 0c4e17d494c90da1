package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/iqtrace/iqtrace/internal/domain"
	internal_errors "github.com/iqtrace/iqtrace/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTimelogHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	caller := domain.User{Id: 1, Email: "caller@b.com"}
	router, token := authedRouter(t, caller, func(r chi.Router) {
		r.Post("/timelog", h.CreateTimelog)
	})

	t.Run("email defaults to the caller", func(t *testing.T) {
		var gotEmail domain.Email
		h.timelog = &MockTimelogService{
			MockCreate: func(email domain.Email, roomNumber domain.RoomNumber) (domain.Timelog, error) {
				gotEmail = email
				return domain.Timelog{Id: 1, UserEmail: email, RoomNumber: roomNumber}, nil
			},
		}

		req := createRequest(t, http.MethodPost, "/timelog", []byte(`{"room_number": 101}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "caller@b.com", gotEmail)

		var log domain.Timelog
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &log))
		assert.Equal(t, int64(101), log.RoomNumber)
	})

	t.Run("explicit email wins over the caller", func(t *testing.T) {
		var gotEmail domain.Email
		h.timelog = &MockTimelogService{
			MockCreate: func(email domain.Email, roomNumber domain.RoomNumber) (domain.Timelog, error) {
				gotEmail = email
				return domain.Timelog{Id: 1, UserEmail: email, RoomNumber: roomNumber}, nil
			},
		}

		req := createRequest(t, http.MethodPost, "/timelog", []byte(`{"room_number": 101, "user_email": "visitor@b.com"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "visitor@b.com", gotEmail)
	})

	t.Run("missing room number", func(t *testing.T) {
		h.timelog = &MockTimelogService{}

		req := createRequest(t, http.MethodPost, "/timelog", []byte(`{"user_email": "a@b.com"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown room", func(t *testing.T) {
		h.timelog = &MockTimelogService{
			MockCreate: func(email domain.Email, roomNumber domain.RoomNumber) (domain.Timelog, error) {
				return domain.Timelog{}, &internal_errors.ErrorWithStatusCode{Message: "Room not found", StatusCode: http.StatusNotFound}
			},
		}

		req := createRequest(t, http.MethodPost, "/timelog", []byte(`{"room_number": 999}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
