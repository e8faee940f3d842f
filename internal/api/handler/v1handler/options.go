package v1handler

import (
	"io"
	"net/http"
	"passgen/pkg/domain"
	"passgen/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodyBytes bounds request bodies; an options document is tiny.
const maxBodyBytes = 4 << 10

// DecodeOptions applies the fields present in a JSON options document on top
// of base. Unknown fields are ignored. The result is normalized, so a zero
// length selects the default and out-of-range lengths are clamped.
func DecodeOptions(d *jx.Decoder, base domain.CharsetOptions) (domain.CharsetOptions, error) {
	opts := base

	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "lower":
			opts.IncludeLower, err = d.Bool()
		case "upper":
			opts.IncludeUpper, err = d.Bool()
		case "numbers":
			opts.IncludeNumbers, err = d.Bool()
		case "symbols":
			opts.IncludeSymbols, err = d.Bool()
		case "excludeAmbiguous":
			opts.ExcludeAmbiguous, err = d.Bool()
		case "readable":
			opts.ReadabilityFilter, err = d.Bool()
		case "length":
			opts.Length, err = d.Int()
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}

		return nil
	})
	if err != nil {
		return base, serrors.Wrap(serrors.ErrBadRequest, err, "invalid options document")
	}

	return opts.Normalize(), nil
}

// GetOptions returns the options currently selected.
func (h Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encodeOptions(e, h.deps.Session.Options())
	writeJSON(w, http.StatusOK, e)
}

// PutOptions applies the fields present in the body to the selected options
// in one step and returns them normalized.
func (h Handler) PutOptions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	opts, err := h.deps.Session.UpdateOptions(func(o *domain.CharsetOptions) error {
		updated, err := DecodeOptions(jx.DecodeBytes(body), *o)
		if err != nil {
			return err
		}
		*o = updated

		return nil
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encodeOptions(e, opts)
	writeJSON(w, http.StatusOK, e)
}
