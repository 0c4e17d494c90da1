package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iqtrace/iqtrace/internal/utils"
)

type issueVerificationRequest struct {
	Email string `validate:"required" json:"email"`
}

func (h *Handler) IssueVerification(w http.ResponseWriter, r *http.Request) {
	var req issueVerificationRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.verification.Issue(req.Email); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, message{"Verification email sent"})
}

// ConsumeVerification resolves the emailed link. Public: the visitor is not
// logged in when they click it.
func (h *Handler) ConsumeVerification(w http.ResponseWriter, r *http.Request) {
	tokenId := chi.URLParam(r, "id")

	email, err := h.verification.Consume(tokenId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, message{email + " is now verified"})
}
