package uploads

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"tikkeul/internal/domain"
	"tikkeul/internal/pkg/logger"
	"tikkeul/internal/ports"
)

// MaxImageSize bounds a stored image.
const MaxImageSize = 5 << 20

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

var keyPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(jpg|png|gif)$`)

// Messages shown to the uploader.
const (
	MsgInvalidType = "Invalid file type. Only JPEG, PNG, and GIF are allowed."
	MsgTooLarge    = "File size exceeds 5MB limit."
)

var (
	ErrBadSignature = errors.New("upload URL is invalid or expired")
	ErrTooLarge     = errors.New("upload exceeds the 5 MiB limit")
)

type Service struct {
	dir     string
	baseURL string
	ttl     time.Duration
	secret  []byte
	clock   clockwork.Clock
}

type Option func(*Service)

func WithClock(c clockwork.Clock) Option { return func(s *Service) { s.clock = c } }

func New(dir, publicBaseURL string, ttl time.Duration, secret string, opts ...Option) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	s := &Service{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		ttl:     ttl,
		secret:  []byte(secret),
		clock:   clockwork.NewRealClock(),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// RequestUpload allocates a fresh object key and signs a PUT URL for it.
func (s *Service) RequestUpload(ctx context.Context, fileName, fileType string) (domain.UploadTicket, error) {
	ext, ok := allowedTypes[fileType]
	if !ok {
		return domain.UploadTicket{}, domain.Invalid(MsgInvalidType)
	}
	key := uuid.NewString() + ext
	expires := s.clock.Now().Add(s.ttl).Unix()

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("type", fileType)
	q.Set("sig", s.sign(key, expires, fileType))

	logger.Debugf(ctx, "upload key %s issued for %q", key, fileName)
	return domain.UploadTicket{
		PresignedURL: s.baseURL + "/image/upload/" + key + "?" + q.Encode(),
		FileURL:      s.baseURL + "/image/" + key,
	}, nil
}

func (s *Service) sign(key string, expires int64, fileType string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d\n%s", key, expires, fileType)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Service) verify(key string, sig ports.UploadSignature) error {
	if !keyPattern.MatchString(key) {
		return domain.ErrNotFound
	}
	want := s.sign(key, sig.Expires, sig.FileType)
	if !hmac.Equal([]byte(want), []byte(sig.Sig)) {
		return ErrBadSignature
	}
	if s.clock.Now().Unix() > sig.Expires {
		return ErrBadSignature
	}
	return nil
}

// WriteChunk stores body at offset within the object. The first chunk must
// look like the declared image type.
func (s *Service) WriteChunk(ctx context.Context, key string, sig ports.UploadSignature, offset int64, body io.Reader) error {
	if err := s.verify(key, sig); err != nil {
		return err
	}
	if offset < 0 || offset >= MaxImageSize {
		return ErrTooLarge
	}

	flags := os.O_CREATE | os.O_WRONLY
	if offset == 0 {
		head := make([]byte, 3072)
		n, err := io.ReadFull(body, head)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return err
		}
		head = head[:n]
		if !mimetype.Detect(head).Is(sig.FileType) {
			return domain.Invalid(MsgInvalidType)
		}
		body = io.MultiReader(bytes.NewReader(head), body)
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(s.path(key), flags, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	limit := MaxImageSize - offset
	n, err := io.Copy(io.NewOffsetWriter(f, offset), io.LimitReader(body, limit+1))
	if err != nil {
		return err
	}
	if n > limit {
		_ = f.Truncate(0)
		return ErrTooLarge
	}
	logger.Debugf(ctx, "upload %s: wrote %d bytes at %d", key, n, offset)
	return nil
}

// Open returns a stored image and its detected content type.
func (s *Service) Open(_ context.Context, key string) (io.ReadSeekCloser, string, error) {
	if !keyPattern.MatchString(key) {
		return nil, "", domain.ErrNotFound
	}
	f, err := os.Open(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", domain.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, "", err
	}
	return f, mt.String(), nil
}

func (s *Service) path(key string) string { return filepath.Join(s.dir, key) }
