// Package carousel is a cursor over an ordered sequence of media slides.
package carousel

import (
	"errors"
	"fmt"
	"time"
)

var ErrOutOfRange = errors.New("slide index out of range")

// Boundary is what happens when the cursor moves past either end.
type Boundary int

const (
	// Wrap moves from the last slide to the first and back.
	Wrap Boundary = iota
	// Clamp stays on the first or last slide.
	Clamp
)

func (b Boundary) String() string {
	if b == Clamp {
		return "clamp"
	}
	return "wrap"
}

// Carousel tracks the current slide of one sequence.
type Carousel struct {
	length   int
	index    int
	boundary Boundary
	autoplay time.Duration
}

// Option configures a Carousel.
type Option func(*Carousel)

// WithBoundary sets the boundary policy. The default is Wrap.
func WithBoundary(b Boundary) Option {
	return func(c *Carousel) { c.boundary = b }
}

// WithAutoplay advances the carousel every d. Zero disables it.
func WithAutoplay(d time.Duration) Option {
	return func(c *Carousel) {
		if d > 0 {
			c.autoplay = d
		}
	}
}

// New returns a carousel over length slides positioned on the first one.
func New(length int, opts ...Option) *Carousel {
	if length < 0 {
		length = 0
	}
	c := &Carousel{length: length}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Carousel) Len() int { return c.length }
func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Autoplay() time.Duration { return c.autoplay }

// Next advances one slide and returns the new index.
func (c *Carousel) Next() int {
	if c.length == 0 {
		return 0
	}
	switch {
	case c.index < c.length-1:
		c.index++
	case c.boundary == Wrap:
		c.index = 0
	}
	return c.index
}

// Prev goes back one slide and returns the new index.
func (c *Carousel) Prev() int {
	if c.length == 0 {
		return 0
	}
	switch {
	case c.index > 0:
		c.index--
	case c.boundary == Wrap:
		c.index = c.length - 1
	}
	return c.index
}

// Go jumps to slide i, as an indicator does.
func (c *Carousel) Go(i int) error {
	if i < 0 || i >= c.length {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, c.length)
	}
	c.index = i
	return nil
}

// HasNext reports whether Next would move the cursor.
func (c *Carousel) HasNext() bool {
	return c.length > 1 && (c.boundary == Wrap || c.index < c.length-1)
}

// HasPrev reports whether Prev would move the cursor.
func (c *Carousel) HasPrev() bool {
	return c.length > 1 && (c.boundary == Wrap || c.index > 0)
}

// Peek returns the index Next or Prev would land on without moving.
func (c *Carousel) Peek(forward bool) int {
	cp := *c
	if forward {
		return cp.Next()
	}
	return cp.Prev()
}
