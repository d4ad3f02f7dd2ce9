package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"tikkeul/internal/domain"
	"tikkeul/internal/pkg/logger"
	authsvc "tikkeul/internal/services/auth"
	uploadsvc "tikkeul/internal/services/uploads"
)

// maxBodyBytes caps request bodies on the generated routes.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code and a {"detail"} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status = http.StatusInternalServerError
		detail = "Internal server error"
		ve     *domain.ValidationError
	)
	switch {
	case errors.As(err, &ve):
		status, detail = http.StatusBadRequest, ve.Msg
	case errors.Is(err, domain.ErrNotFound):
		status, detail = http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrUnauthorized):
		status, detail = http.StatusUnauthorized, "Could not validate credentials"
		w.Header().Set("WWW-Authenticate", "Bearer")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		status, detail = http.StatusUnauthorized, authsvc.MsgInvalidCredentials
		w.Header().Set("WWW-Authenticate", "Bearer")
	case errors.Is(err, uploadsvc.ErrBadSignature):
		status, detail = http.StatusForbidden, err.Error()
	case errors.Is(err, uploadsvc.ErrTooLarge):
		status, detail = http.StatusRequestEntityTooLarge, uploadsvc.MsgTooLarge
	case errors.Is(err, domain.ErrConflict):
		status, detail = http.StatusConflict, "Already exists"
	default:
		logger.Errorf(r.Context(), "%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorBody{Detail: detail})
}
