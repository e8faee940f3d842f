// Package v1handler implements the v1 JSON API over a password session.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"passgen/pkg/domain"
	"passgen/pkg/logger"
	"passgen/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Session is the part of session.Session the API drives.
type Session interface {
	Options() domain.CharsetOptions
	UpdateOptions(change func(opts *domain.CharsetOptions) error) (domain.CharsetOptions, error)
	Generate(ctx context.Context) (*domain.Password, error)
	Regenerate(ctx context.Context) (*domain.Password, error)
	Current() (*domain.Password, error)
	History() []domain.Password
	Copy(ctx context.Context) error
	DownloadFile() (string, []byte, error)
}

type Deps struct {
	Session Session
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register adds every v1 route to mux.
func (h Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/options", h.GetOptions)
	mux.HandleFunc("PUT /v1/options", h.PutOptions)
	mux.HandleFunc("POST /v1/passwords", h.CreatePassword)
	mux.HandleFunc("POST /v1/passwords/regenerate", h.RegeneratePassword)
	mux.HandleFunc("GET /v1/passwords/current", h.GetCurrent)
	mux.HandleFunc("POST /v1/passwords/current/copy", h.CopyCurrent)
	mux.HandleFunc("GET /v1/passwords/current/download", h.DownloadCurrent)
	mux.HandleFunc("GET /v1/history", h.ListHistory)
}

// ErrorResponse is the body sent for every failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrEmptyCharset:         "choose at least one character set",
	serrors.ErrClipboardUnavailable: "clipboard unavailable",
	serrors.ErrBadRequest:           "bad request",
	serrors.ErrNotFound:             "resource not found",
	serrors.ErrInternal:             "internal error",
}

// StatusCode maps a semantic error kind to its HTTP status.
func StatusCode(k serrors.Kind) int {
	switch k {
	case serrors.ErrEmptyCharset:
		return http.StatusUnprocessableEntity
	case serrors.ErrClipboardUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewError converts err into the response sent to the client. Messages of
// internal errors never reach the client.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status := StatusCode(kind)
	if status == http.StatusInternalServerError {
		kind = serrors.ErrInternal
	}

	msg := defaultMessages[kind]
	var se *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Int("status", status), zap.String("code", kind.Error()))
	}

	return &ErrorResponse{
		StatusCode: status,
		Code:       kind.Error(),
		Message:    msg,
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str(res.Message) })
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
	})
	writeJSON(w, res.StatusCode, e)
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
