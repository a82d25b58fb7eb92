package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-desk/internal/core/domain"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Message: message})
}

// fail reports err. Validation errors become 400 with invalidMsg and the
// field list; anything else is logged and becomes 500 with failMsg.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, invalidMsg, failMsg string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: invalidMsg, Errors: verr.Fields})
		return
	}
	h.logger.Error(failMsg,
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err),
	)
	h.writeError(w, http.StatusInternalServerError, failMsg)
}

// decodeBody reads a JSON object into dst. With strict set, keys that dst
// does not declare are rejected. An empty body decodes as {}. Decoding
// problems are returned as a *domain.ValidationError.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, entity string, strict bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &domain.ValidationError{Entity: entity, Fields: []domain.FieldError{decodeFieldError(err)}}
}

func decodeFieldError(err error) domain.FieldError {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		maxErr    *http.MaxBytesError
	)
	switch {
	case errors.As(err, &typeErr):
		return domain.FieldError{Field: typeErr.Field, Message: "Expected " + typeErr.Type.String()}
	case errors.As(err, &syntaxErr):
		return domain.FieldError{Message: "Malformed JSON at offset " + strconv.FormatInt(syntaxErr.Offset, 10)}
	case errors.As(err, &maxErr):
		return domain.FieldError{Message: "Request body too large"}
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field, uerr := strconv.Unquote(strings.TrimPrefix(err.Error(), "json: unknown field "))
		if uerr != nil {
			field = strings.TrimPrefix(err.Error(), "json: unknown field ")
		}
		return domain.FieldError{Field: field, Message: "Unknown field"}
	default:
		return domain.FieldError{Message: "Invalid JSON body"}
	}
}

// pathID parses the {id} URL parameter. An id that cannot name a record
// reports false.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive id filter from the query string.
func queryID(r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
