package handler

import (
	"net/http"

	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/middleware"
	"github.com/iqtrace/iqtrace/internal/utils"
)

type registerRequest struct {
	Email         string            `validate:"required" json:"email"`
	Password      string            `validate:"required" json:"password"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	ContactNumber string            `json:"contact_number"`
	Birthday      string            `json:"birthday"`
	Address       string            `json:"address"`
	Survey        map[string]string `json:"survey"`
}

type credentials struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type profileUpdate struct {
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	ContactNumber string            `json:"contact_number"`
	Birthday      string            `json:"birthday"`
	Address       string            `json:"address"`
	Temperature   *float64          `json:"temperature"`
	Survey        map[string]string `json:"survey"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(domain.User{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Birthday:      req.Birthday,
		Address:       req.Address,
		Survey:        req.Survey,
	}, req.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(creds.Email, creds.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUserFromContext(r)

	user, err := h.auth.Me(caller.Email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUserFromContext(r)

	var req profileUpdate
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.UpdateMe(caller.Email, domain.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Birthday:      req.Birthday,
		Address:       req.Address,
		Temperature:   req.Temperature,
		Survey:        req.Survey,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.Users()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.DeleteUser(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, message{"User deleted"})
}
