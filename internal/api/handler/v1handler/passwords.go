package v1handler

import (
	"mime"
	"net/http"
	"passgen/pkg/domain"
	"strconv"

	"github.com/go-faster/jx"
)

// CreatePassword generates a password with the selected options.
func (h Handler) CreatePassword(w http.ResponseWriter, r *http.Request) {
	pw, err := h.deps.Session.Generate(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writePassword(w, http.StatusCreated, pw)
}

// RegeneratePassword generates again when a password exists and the
// selected options allow it, and answers 204 when nothing was generated.
func (h Handler) RegeneratePassword(w http.ResponseWriter, r *http.Request) {
	pw, err := h.deps.Session.Regenerate(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if pw == nil {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	h.writePassword(w, http.StatusOK, pw)
}

// GetCurrent returns the latest password scored against the selected options.
func (h Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	pw, err := h.deps.Session.Current()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writePassword(w, http.StatusOK, pw)
}

// CopyCurrent puts the latest password on the clipboard of the machine
// running the server.
func (h Handler) CopyCurrent(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Session.Copy(r.Context()); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DownloadCurrent serves the latest password as a plain-text attachment.
func (h Handler) DownloadCurrent(w http.ResponseWriter, r *http.Request) {
	name, content, err := h.deps.Session.DownloadFile()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", "text/plain; charset=utf-8")
	hdr.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	hdr.Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// ListHistory returns every password of the session, newest first.
func (h Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history := h.deps.Session.History()

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range history {
					encodePassword(e, &history[i])
				}
			})
		})
		e.Field("total", func(e *jx.Encoder) { e.Int(len(history)) })
	})
	writeJSON(w, http.StatusOK, e)
}

func (h Handler) writePassword(w http.ResponseWriter, status int, pw *domain.Password) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encodePassword(e, pw)
	writeJSON(w, status, e)
}
