package face

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/iqtrace/iqtrace/internal/domain"
)

// Extractor produces a single face encoding from raw image bytes.
type Extractor interface {
	Extract(ctx context.Context, imageData []byte) (domain.FaceEncoding, error)
}

// Client talks to the external face-recognition service that computes the
// actual detections and encodings. We only preprocess and apply policy.
type Client struct {
	baseURL string
	maxSide int
	client  *http.Client
}

func NewClient(baseURL string, maxSide int) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		maxSide: maxSide,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// encodingsResponse is the face service answer: one encoding per detected face.
type encodingsResponse struct {
	Encodings []domain.FaceEncoding `json:"encodings"`
}

// Extract preprocesses the image and asks the face service for encodings.
// Zero detected faces or more than one are policy failures, not server faults.
func (c *Client) Extract(ctx context.Context, imageData []byte) (domain.FaceEncoding, error) {
	processed, err := Preprocess(imageData, c.maxSide)
	if err != nil {
		// Undecodable bytes behave like an unreadable face, matching the
		// single failure mode callers can act on.
		return nil, ErrCannotReadFace
	}

	body, err := c.postMultipartImage(ctx, "/encodings", processed)
	if err != nil {
		return nil, err
	}

	var resp encodingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse face service response: %w", err)
	}

	switch len(resp.Encodings) {
	case 0:
		return nil, ErrCannotReadFace
	case 1:
		return resp.Encodings[0], nil
	default:
		return nil, ErrHasMoreThanOneFace
	}
}

// postMultipartImage posts the image as a multipart form to the face service.
func (c *Client) postMultipartImage(ctx context.Context, endpoint string, imageData []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("face service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read face service response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("face service returned status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}
