package face

import (
	"fmt"
	"math"
	"net/http"

	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/iqtrace/iqtrace/internal/errors"
)

// DefaultTolerance mirrors the threshold used by the face_recognition library:
// two encodings at Euclidean distance <= 0.6 belong to the same person.
const DefaultTolerance = 0.6

var (
	ErrCannotReadFace = &errors.ErrorWithStatusCode{
		Message:    "No face could be detected in the uploaded image",
		StatusCode: http.StatusBadRequest,
	}
	ErrHasMoreThanOneFace = &errors.ErrorWithStatusCode{
		Message:    "The uploaded image contains more than one face",
		StatusCode: http.StatusBadRequest,
	}
	ErrNoEnrolledEncoding = &errors.ErrorWithStatusCode{
		Message:    "No enrolled face encoding; upload one first",
		StatusCode: http.StatusBadRequest,
	}
)

// Distance returns the Euclidean distance between two encodings.
func Distance(a, b domain.FaceEncoding) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrNoEnrolledEncoding
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("encoding dimensionality mismatch: %d vs %d", len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// IsMatch decides "same person" by thresholding the distance. The boundary is
// inclusive: distance == tolerance counts as a match.
func IsMatch(known, candidate domain.FaceEncoding, tolerance float64) (bool, error) {
	dist, err := Distance(known, candidate)
	if err != nil {
		return false, err
	}
	return dist <= tolerance, nil
}
