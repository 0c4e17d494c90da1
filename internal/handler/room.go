package handler

import (
	"net/http"

	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/utils"
)

type createRoomRequest struct {
	Number int64  `validate:"required" json:"number"`
	Name   string `json:"name"`
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	room := domain.Room{Number: req.Number, Name: req.Name}
	if err := h.room.Create(room); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, room)
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.room.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, rooms)
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	number, err := parseInt64Param(r, "number")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.room.Delete(number); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, message{"Room deleted"})
}

func (h *Handler) GetRoomTimelogs(w http.ResponseWriter, r *http.Request) {
	number, err := parseInt64Param(r, "number")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	logs, err := h.timelog.ListByRoom(number)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, logs)
}
