package v1handler

import (
	"passgen/pkg/domain"
	"time"
	"unicode/utf8"

	"github.com/go-faster/jx"
)

func encodeOptions(e *jx.Encoder, o domain.CharsetOptions) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("lower", func(e *jx.Encoder) { e.Bool(o.IncludeLower) })
		e.Field("upper", func(e *jx.Encoder) { e.Bool(o.IncludeUpper) })
		e.Field("numbers", func(e *jx.Encoder) { e.Bool(o.IncludeNumbers) })
		e.Field("symbols", func(e *jx.Encoder) { e.Bool(o.IncludeSymbols) })
		e.Field("excludeAmbiguous", func(e *jx.Encoder) { e.Bool(o.ExcludeAmbiguous) })
		e.Field("readable", func(e *jx.Encoder) { e.Bool(o.ReadabilityFilter) })
		e.Field("length", func(e *jx.Encoder) { e.Int(o.Length) })
	})
}

func encodeScore(e *jx.Encoder, s domain.Score) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("bits", func(e *jx.Encoder) { e.Float64(s.Bits) })
		e.Field("meter", func(e *jx.Encoder) { e.Float64(s.Meter) })
		e.Field("percent", func(e *jx.Encoder) { e.Float64(s.Percent()) })
		e.Field("strength", func(e *jx.Encoder) { e.Str(string(s.Strength)) })
	})
}

func encodePassword(e *jx.Encoder, p *domain.Password) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID.String()) })
		e.Field("password", func(e *jx.Encoder) { e.Str(p.Value) })
		e.Field("requested", func(e *jx.Encoder) { e.Int(p.Requested) })
		// may be below requested after readability filtering
		e.Field("length", func(e *jx.Encoder) { e.Int(utf8.RuneCountInString(p.Value)) })
		e.Field("score", func(e *jx.Encoder) { encodeScore(e, p.Score) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(p.CreatedAt.UTC().Format(time.RFC3339Nano)) })
	})
}
