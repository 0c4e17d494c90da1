package handler

import (
	"net/http"

	"github.com/iqtrace/iqtrace/internal/middleware"
	"github.com/iqtrace/iqtrace/internal/utils"
)

type createTimelogRequest struct {
	RoomNumber int64  `validate:"required" json:"room_number"`
	UserEmail  string `json:"user_email"`
}

// CreateTimelog appends a room-entry record. The email defaults to the
// caller's but can be overridden, e.g. by a kiosk logging on behalf of
// visitors.
func (h *Handler) CreateTimelog(w http.ResponseWriter, r *http.Request) {
	var req createTimelogRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	email := req.UserEmail
	if email == "" {
		email = middleware.GetUserFromContext(r).Email
	}

	log, err := h.timelog.Create(email, req.RoomNumber)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, log)
}
