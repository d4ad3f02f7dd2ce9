package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tikkeul/internal/api"
	"tikkeul/internal/domain"
	"tikkeul/internal/ports"
)

func (s *Server) CreateUploadUrl(ctx context.Context, req api.CreateUploadUrlRequestObject) (api.CreateUploadUrlResponseObject, error) {
	if req.Body == nil {
		return nil, domain.Invalid("missing body")
	}
	ticket, err := s.svc.Uploads.RequestUpload(ctx, req.Body.FileName, req.Body.FileType)
	if err != nil {
		return nil, err
	}
	return api.CreateUploadUrl200JSONResponse{PresignedUrl: ticket.PresignedURL, FileUrl: ticket.FileURL}, nil
}

func (s *Server) putImageChunk(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expires, err := strconv.ParseInt(q.Get("expires"), 10, 64)
	if err != nil {
		writeError(w, r, domain.Invalid("invalid expires"))
		return
	}
	offset, err := contentRangeStart(r.Header.Get("Content-Range"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sig := ports.UploadSignature{Expires: expires, FileType: q.Get("type"), Sig: q.Get("sig")}
	if err := s.svc.Uploads.WriteChunk(r.Context(), chi.URLParam(r, "key"), sig, offset, r.Body); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// contentRangeStart returns the first byte offset of a
// "bytes start-end/total" header. A missing header means offset 0.
func contentRangeStart(h string) (int64, error) {
	if h == "" {
		return 0, nil
	}
	var start, end int64
	var total string
	if _, err := fmt.Sscanf(h, "bytes %d-%d/%s", &start, &end, &total); err != nil || start < 0 || end < start {
		return 0, domain.Invalid("invalid Content-Range")
	}
	return start, nil
}

func (s *Server) getImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	f, contentType, err := s.svc.Uploads.Open(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, key, time.Time{}, f)
}
