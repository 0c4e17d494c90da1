package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/iqtrace/iqtrace/internal/config"
	"github.com/iqtrace/iqtrace/internal/errors"
	"github.com/iqtrace/iqtrace/internal/service"
)

type Handler struct {
	auth         service.AuthService
	face         service.FaceService
	room         service.RoomService
	timelog      service.TimelogService
	verification service.VerificationService
	cfg          *config.Config
}

func New(auth service.AuthService, face service.FaceService, room service.RoomService,
	timelog service.TimelogService, verification service.VerificationService, cfg *config.Config) *Handler {
	return &Handler{auth, face, room, timelog, verification, cfg}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type message struct {
	Message string `json:"message"`
}

// parseInt64Param parses an integer url parameter with a meaningful error.
func parseInt64Param(r *http.Request, name string) (int64, error) {
	val, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &errors.ErrorWithStatusCode{Message: "invalid " + name + ": must be an integer", StatusCode: http.StatusBadRequest}
	}
	return val, nil
}

// imageUpload extracts the uploaded image file and its declared content type
// from a multipart form.
func (h *Handler) imageUpload(r *http.Request) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(h.cfg.Public.MaxUploadSize); err != nil {
		return nil, "", &errors.ErrorWithStatusCode{Message: "Invalid multipart form", StatusCode: http.StatusBadRequest}
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", &errors.ErrorWithStatusCode{Message: "Missing image file in form field 'image'", StatusCode: http.StatusBadRequest}
	}
	return file, header.Header.Get("Content-Type"), nil
}
