// Package session owns the state of one password-generation session: the
// options currently selected, the most recent password and the history of
// everything generated. Front-ends (CLI, terminal UI, HTTP API) drive it and
// render what it returns.
package session

import (
	"context"
	"io"
	"passgen/internal/charset"
	"passgen/internal/entropy"
	"passgen/internal/generator"
	"passgen/pkg/domain"
	"passgen/pkg/logger"
	"passgen/pkg/metrics"
	"passgen/pkg/serrors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DownloadName is the file name offered by the Download action.
const DownloadName = "password.txt"

// Options configures a Session. Zero values fall back to working defaults.
type Options struct {
	// Defaults are the options selected when the session starts.
	Defaults domain.CharsetOptions
	// Random is the randomness source; nil means crypto/rand.
	Random io.Reader
	// Clipboard receives Copy; nil makes Copy fail as unavailable.
	Clipboard Clipboard
	// Downloader receives Download; nil makes Download fail.
	Downloader Downloader
	// Metrics records generation outcomes; nil records nothing.
	Metrics *metrics.Instruments
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Session is safe for concurrent use. Every operation runs to completion
// under a single lock.
type Session struct {
	mu sync.Mutex

	opts    domain.CharsetOptions
	current *domain.Password
	// history is newest first and never trimmed.
	history []domain.Password

	gen        *generator.Generator
	clipboard  Clipboard
	downloader Downloader
	metrics    *metrics.Instruments
	now        func() time.Time
}

// New creates a session with the given options.
func New(o Options) *Session {
	if o.Metrics == nil {
		o.Metrics = metrics.Noop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	return &Session{
		opts:       o.Defaults.Normalize(),
		gen:        generator.New(o.Random),
		clipboard:  o.Clipboard,
		downloader: o.Downloader,
		metrics:    o.Metrics,
		now:        o.Now,
	}
}

// SetOptions replaces the selected options. Length is clamped.
func (s *Session) SetOptions(opts domain.CharsetOptions) domain.CharsetOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opts = opts.Normalize()

	return s.opts
}

// UpdateOptions applies change to the selected options under the session
// lock, so concurrent partial updates do not overwrite each other. When change
// fails the options stay as they were. Length is clamped afterwards.
func (s *Session) UpdateOptions(change func(opts *domain.CharsetOptions) error) (domain.CharsetOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := s.opts
	if err := change(&opts); err != nil {
		return s.opts, err
	}
	s.opts = opts.Normalize()

	return s.opts, nil
}

// Options returns the selected options.
func (s *Session) Options() domain.CharsetOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.opts
}

// Pool returns the pool the selected options produce right now.
func (s *Session) Pool() charset.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return charset.Build(s.opts)
}

// Generate draws a new password with the selected options, makes it the
// current one and prepends it to the history. When the pool is empty it
// returns an ErrEmptyCharset error and leaves the session untouched.
func (s *Session) Generate(ctx context.Context) (*domain.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generate(ctx)
}

// Regenerate runs Generate again, but only when a password has already been
// generated and the selected options still produce a non-empty pool.
// Otherwise it does nothing and returns (nil, nil).
func (s *Session) Regenerate(ctx context.Context) (*domain.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || charset.Build(s.opts).Empty() {
		logger.Debug(ctx, "regenerate skipped", zap.Bool("hasCurrent", s.current != nil))

		return nil, nil //nolint: nilnil
	}

	return s.generate(ctx)
}

func (s *Session) generate(ctx context.Context) (*domain.Password, error) {
	opts := s.opts
	pool := charset.Build(opts)

	raw, err := s.gen.Generate(pool, opts.Length)
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrEmptyCharset {
			s.metrics.Generation(ctx, metrics.ResultEmptyCharset)
			logger.Info(ctx, "generation refused, empty charset")
		} else {
			s.metrics.Generation(ctx, metrics.ResultError)
			logger.Error(ctx, "could not generate password", zap.Error(err))
		}

		return nil, err
	}

	value := raw
	if opts.ReadabilityFilter {
		value = generator.Readable(raw)
	}

	pw := domain.Password{
		ID:        domain.PasswordID(uuid.New()),
		Value:     value,
		Requested: opts.Length,
		Score:     entropy.Score(value, pool),
		CreatedAt: s.now(),
	}

	s.current = &pw
	s.history = append([]domain.Password{pw}, s.history...)

	s.metrics.Generation(ctx, metrics.ResultOK)
	s.metrics.Entropy(ctx, pw.Score.Bits)
	logger.Info(ctx, "password generated",
		zap.Stringer("id", pw.ID),
		zap.Int("requested", pw.Requested),
		zap.Int("poolSize", pool.Size()),
		zap.Float64("bits", pw.Score.Bits),
		zap.String("strength", string(pw.Score.Strength)))

	out := pw

	return &out, nil
}

// Current returns the most recent password, rescored against the options
// selected now rather than the ones it was generated with.
func (s *Session) Current() (*domain.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no password generated yet")
	}

	out := *s.current
	out.Score = entropy.Score(out.Value, charset.Build(s.opts))

	return &out, nil
}

// History returns every password generated in this session, newest first.
func (s *Session) History() []domain.Password {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Password, len(s.history))
	copy(out, s.history)

	return out
}

// Copy writes the current password to the clipboard. A clipboard failure is
// reported as ErrClipboardUnavailable; the current password is unaffected.
func (s *Session) Copy(ctx context.Context) error {
	value, err := s.currentValue()
	if err != nil {
		return err
	}

	if s.clipboard == nil {
		s.metrics.ClipboardFailure(ctx)

		return serrors.With(serrors.ErrClipboardUnavailable, "clipboard write failed, please copy manually")
	}
	if err := s.clipboard.WriteAll(ctx, value); err != nil {
		s.metrics.ClipboardFailure(ctx)
		logger.Warn(ctx, "clipboard write failed", zap.Error(err))

		return serrors.Wrap(serrors.ErrClipboardUnavailable, err, "clipboard write failed, please copy manually")
	}

	return nil
}

// DownloadFile returns the file name and content the Download action offers.
func (s *Session) DownloadFile() (string, []byte, error) {
	value, err := s.currentValue()
	if err != nil {
		return "", nil, err
	}

	return DownloadName, []byte(value), nil
}

// Download hands the current password to the downloader as DownloadName.
func (s *Session) Download(ctx context.Context) error {
	name, content, err := s.DownloadFile()
	if err != nil {
		return err
	}
	if s.downloader == nil {
		return serrors.With(serrors.ErrInternal, "downloads are not available")
	}
	if err := s.downloader.Save(ctx, name, content); err != nil {
		logger.Error(ctx, "could not save download", zap.Error(err))

		return serrors.Wrap(serrors.ErrInternal, err, "could not save %s", name)
	}

	return nil
}

func (s *Session) currentValue() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", serrors.With(serrors.ErrNotFound, "no password generated yet")
	}

	return s.current.Value, nil
}
