package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

const (
	ChunkSize      = 1 << 20
	MaxUploadBytes = 5 << 20
)

// Messages shown when an image is rejected before upload.
const (
	MsgUnsupportedImage = "Invalid file type. Only JPEG, PNG, and GIF are allowed."
	MsgImageTooLarge    = "File size exceeds 5MB limit."
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds the 5 MiB limit")
)

// UploadMessage returns the message to show for an UploadImage error.
func UploadMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedImage):
		return MsgUnsupportedImage
	case errors.Is(err, ErrImageTooLarge):
		return MsgImageTooLarge
	default:
		return err.Error()
	}
}

var uploadTypes = []string{"image/jpeg", "image/png", "image/gif"}

// Progress receives the fraction of chunks sent so far.
type Progress func(done float64)

// UploadImage sends data through a signed upload URL in ChunkSize pieces
// and returns the URL the stored image is served from.
func (c *Client) UploadImage(ctx context.Context, name string, data []byte, progress Progress) (string, error) {
	if len(data) == 0 {
		return "", ErrUnsupportedImage
	}
	if len(data) > MaxUploadBytes {
		return "", ErrImageTooLarge
	}
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), uploadTypes...) {
		return "", ErrUnsupportedImage
	}
	fileType := mt.String()

	var ticket uploadURLResponse
	body := map[string]string{"fileName": name, "fileType": fileType}
	if err := c.doJSON(ctx, http.MethodPost, "/image/uploadURL", body, &ticket); err != nil {
		return "", err
	}

	total := len(data)
	chunks := (total + ChunkSize - 1) / ChunkSize
	for i := 0; i < chunks; i++ {
		start := i * ChunkSize
		end := min(start+ChunkSize, total)
		contentRange := fmt.Sprintf("bytes %d-%d/%d", start, end-1, total)
		if err := c.putChunk(ctx, ticket.PresignedURL, fileType, contentRange, data[start:end]); err != nil {
			return "", fmt.Errorf("upload chunk %d/%d: %w", i+1, chunks, err)
		}
		if progress != nil {
			progress(float64(i+1) / float64(chunks))
		}
	}
	return ticket.FileURL, nil
}
