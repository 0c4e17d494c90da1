package handler

import (
	"io"
	"net/http"

	"github.com/iqtrace/iqtrace/internal/errors"
	"github.com/iqtrace/iqtrace/internal/middleware"
	"github.com/iqtrace/iqtrace/internal/utils"
)

// EnrollEncoding stores a new face encoding for the caller, replacing any
// previous one.
func (h *Handler) EnrollEncoding(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUserFromContext(r)

	file, contentType, err := h.imageUpload(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Failed to read uploaded file", StatusCode: http.StatusBadRequest})
		return
	}

	encoding, err := h.face.Enroll(r.Context(), caller.Email, contentType, imageData)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"face_encoding": encoding})
}

// CompareEncoding verifies the caller's identity against their stored
// encoding. No side effects.
func (h *Handler) CompareEncoding(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetUserFromContext(r)

	file, contentType, err := h.imageUpload(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Failed to read uploaded file", StatusCode: http.StatusBadRequest})
		return
	}

	isSimilar, err := h.face.Verify(r.Context(), caller.Email, contentType, imageData)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"is_similar": isSimilar})
}
