package service

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/iqtrace/iqtrace/internal/config"
	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/errors"
	"github.com/iqtrace/iqtrace/internal/face"
)

// to mock service in tests
type FaceService interface {
	Enroll(ctx context.Context, email domain.Email, contentType string, imageData []byte) (domain.FaceEncoding, error)
	Verify(ctx context.Context, email domain.Email, contentType string, imageData []byte) (bool, error)
}

type Face struct {
	storage   FaceStorage
	extractor face.Extractor
	cfg       *config.Config
}

type FaceStorage interface {
	User(email domain.Email) (domain.User, error)
	UpdateFaceEncoding(email domain.Email, encoding domain.FaceEncoding) error
}

func NewFace(storage FaceStorage, extractor face.Extractor, cfg *config.Config) *Face {
	return &Face{storage, extractor, cfg}
}

// Enroll extracts an encoding from the image and stores it against the user,
// replacing any previous one. The write happens only after a successful
// extraction, so a failed upload never disturbs the stored encoding.
func (f *Face) Enroll(ctx context.Context, email domain.Email, contentType string, imageData []byte) (domain.FaceEncoding, error) {
	if err := f.gateMediaType(contentType); err != nil {
		return nil, err
	}

	encoding, err := f.extractor.Extract(ctx, imageData)
	if err != nil {
		return nil, err
	}

	if err := f.storage.UpdateFaceEncoding(email, encoding); err != nil {
		return nil, err
	}
	return encoding, nil
}

// Verify compares a fresh encoding against the user's stored one. Read-only:
// no stored state changes regardless of the outcome.
func (f *Face) Verify(ctx context.Context, email domain.Email, contentType string, imageData []byte) (bool, error) {
	user, err := f.storage.User(email)
	if err != nil {
		return false, err
	}
	if len(user.FaceEncoding) == 0 {
		// A missing enrollment means a prerequisite step was skipped; an
		// implicit "no match" would hide that from the caller.
		return false, face.ErrNoEnrolledEncoding
	}

	if err := f.gateMediaType(contentType); err != nil {
		return false, err
	}

	candidate, err := f.extractor.Extract(ctx, imageData)
	if err != nil {
		return false, err
	}

	return face.IsMatch(user.FaceEncoding, candidate, f.cfg.Public.MatchTolerance)
}

// gateMediaType rejects uploads by declared content type, independent of the
// actual bytes.
func (f *Face) gateMediaType(contentType string) error {
	if !slices.Contains(f.cfg.Public.AllowedMimeTypes, contentType) {
		return &errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("File type %q is not allowed", contentType),
			StatusCode: http.StatusBadRequest,
		}
	}
	return nil
}
