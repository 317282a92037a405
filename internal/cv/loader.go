// Package cv prefetches the CV document once and exposes it for download.
package cv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

const (
	// DefaultPath is where the CV lives among the static assets.
	DefaultPath = "/cv_fernandozarate_2026.pdf"
	// FileName is the name the download is saved under.
	FileName = "cv_fernandozarate_2026.pdf"
	// MIMEType is declared on every download.
	MIMEType = "application/pdf"
)

// ErrFetch wraps any failure to retrieve the CV.
var ErrFetch = errors.New("cv retrieval failed")

// Asset is the retrieved CV. Data is exactly what the fetch returned.
type Asset struct {
	Data     []byte
	FileName string
	MIMEType string
}

// Loader retrieves the CV once and holds it for the life of the process.
type Loader struct {
	fetcher Fetcher
	path    string
	log     zerolog.Logger
	onDone  func(error)

	once  sync.Once
	done  chan struct{}
	asset atomic.Pointer[Asset]
	err   error
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger failures are written to.
func WithLogger(l zerolog.Logger) Option {
	return func(ld *Loader) { ld.log = l }
}

// WithPath overrides DefaultPath.
func WithPath(p string) Option {
	return func(ld *Loader) {
		if p != "" {
			ld.path = p
		}
	}
}

// OnDone registers fn to run once the retrieval finishes, with its error (nil on success).
func OnDone(fn func(error)) Option {
	return func(ld *Loader) { ld.onDone = fn }
}

// NewLoader returns a Loader that has not started fetching.
func NewLoader(f Fetcher, opts ...Option) *Loader {
	ld := &Loader{
		fetcher: f,
		path:    DefaultPath,
		log:     zerolog.Nop(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Start begins the retrieval in the background. Only the first call has any
// effect. If ctx is done before the retrieval completes, the result is
// dropped and the asset stays absent.
func (ld *Loader) Start(ctx context.Context) {
	ld.once.Do(func() {
		go ld.run(ctx)
	})
}

func (ld *Loader) run(ctx context.Context) {
	defer close(ld.done)

	data, err := ld.fetch(ctx)
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: abandoned: %w", ErrFetch, ctx.Err())
	}
	if err != nil {
		ld.err = err
		ld.log.Error().Err(err).Str("path", ld.path).Msg("Error loading CV")
	} else {
		ld.asset.Store(&Asset{Data: data, FileName: FileName, MIMEType: MIMEType})
		ld.log.Info().Str("path", ld.path).Int("bytes", len(data)).Msg("CV loaded")
	}

	if ld.onDone != nil {
		ld.onDone(err)
	}
}

func (ld *Loader) fetch(ctx context.Context) ([]byte, error) {
	rc, err := ld.fetcher.Fetch(ctx, ld.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return data, nil
}

// Asset returns the CV once it has been retrieved.
func (ld *Loader) Asset() (*Asset, bool) {
	a := ld.asset.Load()
	return a, a != nil
}

// Ready reports whether the download control should be offered.
func (ld *Loader) Ready() bool {
	return ld.asset.Load() != nil
}

// Done is closed when the retrieval has finished, successfully or not.
func (ld *Loader) Done() <-chan struct{} {
	return ld.done
}

// Err returns the retrieval error after Done is closed.
func (ld *Loader) Err() error {
	select {
	case <-ld.done:
		return ld.err
	default:
		return nil
	}
}
