// Package disclosure tracks which items of a collapsible list are expanded.
package disclosure

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownItem = errors.New("unknown disclosure item")

// Mode decides whether opening an item closes the others.
type Mode int

const (
	// Multiple lets any number of items be expanded at once.
	Multiple Mode = iota
	// Single keeps at most one item expanded.
	Single
)

// Accordion is the expanded/collapsed state of an ordered list of items.
// It is not safe for concurrent use; build one per request.
type Accordion struct {
	ids         []string
	mode        Mode
	collapsible bool
	defaults    []string
	open        map[string]bool
}

// Option configures an Accordion.
type Option func(*Accordion)

// WithMode sets the expansion mode. The default is Multiple.
func WithMode(m Mode) Option {
	return func(a *Accordion) { a.mode = m }
}

// WithDefault lists the items expanded on a fresh load. Unknown ids are ignored.
func WithDefault(ids ...string) Option {
	return func(a *Accordion) { a.defaults = append(a.defaults, ids...) }
}

// NotCollapsible prevents a Single accordion from closing its only open item.
func NotCollapsible() Option {
	return func(a *Accordion) { a.collapsible = false }
}

// New returns an accordion over ids in their initial state.
func New(ids []string, opts ...Option) *Accordion {
	a := &Accordion{
		ids:         append([]string(nil), ids...),
		collapsible: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Reset()
	return a
}

// Reset restores the configured default state.
func (a *Accordion) Reset() {
	a.open = make(map[string]bool, len(a.ids))
	for _, id := range a.defaults {
		if !a.has(id) {
			continue
		}
		if a.mode == Single {
			a.open = map[string]bool{}
		}
		a.open[id] = true
	}
}

// Toggle flips the state of one item. In Multiple mode no other item changes.
// In Single mode expanding an item collapses the rest.
func (a *Accordion) Toggle(id string) error {
	if !a.has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	if a.open[id] {
		if a.mode == Single && !a.collapsible {
			return nil
		}
		delete(a.open, id)
		return nil
	}

	if a.mode == Single {
		a.open = map[string]bool{}
	}
	a.open[id] = true
	return nil
}

// Expanded reports whether id is currently expanded.
func (a *Accordion) Expanded(id string) bool {
	return a.open[id]
}

// Open returns the expanded ids in list order.
func (a *Accordion) Open() []string {
	out := make([]string, 0, len(a.open))
	for _, id := range a.ids {
		if a.open[id] {
			out = append(out, id)
		}
	}
	return out
}

// Encode serializes the expanded set for a query parameter.
func (a *Accordion) Encode() string {
	return strings.Join(a.Open(), ",")
}

// EncodeToggled is the encoded state that would follow Toggle(id),
// leaving a unchanged.
func (a *Accordion) EncodeToggled(id string) string {
	c := a.clone()
	if err := c.Toggle(id); err != nil {
		return a.Encode()
	}
	return c.Encode()
}

// Decode replaces the expanded set with the comma-separated ids in s.
// Unknown ids are dropped. Single mode keeps only the last known id.
func (a *Accordion) Decode(s string) {
	a.open = make(map[string]bool, len(a.ids))
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if id == "" || !a.has(id) {
			continue
		}
		if a.mode == Single {
			a.open = map[string]bool{}
		}
		a.open[id] = true
	}
}

func (a *Accordion) has(id string) bool {
	for _, v := range a.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (a *Accordion) clone() *Accordion {
	c := *a
	c.open = make(map[string]bool, len(a.open))
	for k, v := range a.open {
		c.open[k] = v
	}
	return &c
}
