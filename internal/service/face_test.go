package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/iqtrace/iqtrace/internal/domain"
	internal_errors "github.com/iqtrace/iqtrace/internal/errors"
	"github.com/iqtrace/iqtrace/internal/face"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("successful enrollment replaces encoding", func(t *testing.T) {
		var stored domain.FaceEncoding
		storage := &MockFaceStorage{
			MockUpdateFaceEncoding: func(email domain.Email, encoding domain.FaceEncoding) error {
				stored = encoding
				return nil
			},
		}
		extractor := &MockExtractor{
			MockExtract: func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
				return domain.FaceEncoding{0.5, 0.6}, nil
			},
		}
		svc := NewFace(storage, extractor, testConfig())

		encoding, err := svc.Enroll(ctx, "a@b.com", "image/jpeg", []byte("img"))
		require.NoError(t, err)
		assert.Equal(t, domain.FaceEncoding{0.5, 0.6}, encoding)
		assert.Equal(t, encoding, stored)
	})

	t.Run("disallowed media type gates before extraction", func(t *testing.T) {
		extractCalled := false
		extractor := &MockExtractor{
			MockExtract: func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
				extractCalled = true
				return nil, nil
			},
		}
		svc := NewFace(&MockFaceStorage{}, extractor, testConfig())

		_, err := svc.Enroll(ctx, "a@b.com", "image/gif", []byte("img"))

		e, ok := err.(*internal_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
		assert.False(t, extractCalled)
	})

	t.Run("extraction failure leaves stored encoding untouched", func(t *testing.T) {
		updateCalled := false
		storage := &MockFaceStorage{
			MockUpdateFaceEncoding: func(email domain.Email, encoding domain.FaceEncoding) error {
				updateCalled = true
				return nil
			},
		}
		extractor := &MockExtractor{
			MockExtract: func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
				return nil, face.ErrCannotReadFace
			},
		}
		svc := NewFace(storage, extractor, testConfig())

		_, err := svc.Enroll(ctx, "a@b.com", "image/png", []byte("img"))
		assert.ErrorIs(t, err, face.ErrCannotReadFace)
		assert.False(t, updateCalled)
	})

	t.Run("multiple faces propagated", func(t *testing.T) {
		extractor := &MockExtractor{
			MockExtract: func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
				return nil, face.ErrHasMoreThanOneFace
			},
		}
		svc := NewFace(&MockFaceStorage{}, extractor, testConfig())

		_, err := svc.Enroll(ctx, "a@b.com", "image/png", []byte("img"))
		assert.ErrorIs(t, err, face.ErrHasMoreThanOneFace)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("match within tolerance", func(t *testing.T) {
		storage := &MockFaceStorage{
			MockUser: func(email domain.Email) (domain.User, error) {
				return domain.User{Email: email, FaceEncoding: domain.FaceEncoding{0.1, 0.2}}, nil
			},
		}
		extractor := &MockExtractor{
			MockExtract: func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
				return domain.FaceEncoding{0.1, 0.2}, nil
			},
		}
		svc := NewFace(storage, extractor, testConfig())

		isSimilar, err := svc.Verify(ctx, "a@b.com", "image/jpeg", []byte("img"))
		require.NoError(t, err)
		assert.True(t, isSimilar)
	})

	t.Run("non-match beyond tolerance", func(t *testing.T) {
		storage := &MockFaceStorage{
			MockUser: func(email domain.Email) (domain.User, error) {
				return domain.User{Email: email, FaceEncoding: domain.FaceEncoding{0, 0}}, nil
			},
		}
		extractor := &MockExtractor{
			MockExtract: func(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
				return domain.FaceEncoding{5, 5}, nil
			},
		}
		svc := NewFace(storage, extractor, testConfig())

		isSimilar, err := svc.Verify(ctx, "a@b.com", "image/jpeg", []byte("img"))
		require.NoError(t, err)
		assert.False(t, isSimilar)
	})

	t.Run("no enrolled encoding is an error, not a non-match", func(t *testing.T) {
		storage := &MockFaceStorage{
			MockUser: func(email domain.Email) (domain.User, error) {
				return domain.User{Email: email}, nil
			},
		}
		svc := NewFace(storage, &MockExtractor{}, testConfig())

		_, err := svc.Verify(ctx, "a@b.com", "image/jpeg", []byte("img"))
		assert.ErrorIs(t, err, face.ErrNoEnrolledEncoding)
	})

	t.Run("unknown user", func(t *testing.T) {
		storage := &MockFaceStorage{
			MockUser: func(email domain.Email) (domain.User, error) {
				return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
			},
		}
		svc := NewFace(storage, &MockExtractor{}, testConfig())

		_, err := svc.Verify(ctx, "ghost@b.com", "image/jpeg", []byte("img"))
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
