package domain

type (
	Email      = string
	Password   = string
	UserId     = int64
	RoomNumber = int64

	// FaceEncoding is a fixed-length real vector produced by the external
	// face-recognition service. Its dimensionality is opaque to us but stable
	// across calls, which is what makes distance comparison meaningful.
	FaceEncoding = []float64
)
