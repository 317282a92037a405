// Package theme selects mode-specific illustration assets and holds the
// active light/dark mode.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is a display preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Illustration names an illustrated logo with one asset per mode.
type Illustration string

const (
	Unexo Illustration = "unexo"
	Nodo  Illustration = "nodo"
)

var (
	ErrUnknownMode         = errors.New("unknown theme mode")
	ErrUnknownIllustration = errors.New("unknown illustration")
)

// Modes lists every supported mode.
var Modes = []Mode{Light, Dark}

// Illustrations lists every illustration with a per-mode asset.
var Illustrations = []Illustration{Unexo, Nodo}

var assets = map[Mode]map[Illustration]string{
	Light: {
		Unexo: "https://res.cloudinary.com/ducvmt3te/image/upload/v1769625957/10_bnrobq.svg",
		Nodo:  "https://res.cloudinary.com/ducvmt3te/image/upload/v1769534508/N_4_ttacyr.svg",
	},
	Dark: {
		Unexo: "https://res.cloudinary.com/ducvmt3te/image/upload/v1769625959/9_jopyef.svg",
		Nodo:  "https://res.cloudinary.com/ducvmt3te/image/upload/v1769625349/3_rlslcy.svg",
	},
}

// ParseMode accepts "light" or "dark", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Valid reports whether m is one of the two supported modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Toggle returns the opposite mode. Anything that is not Dark toggles to Dark.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string { return string(m) }

// URL returns the asset for an illustration in the given mode.
func URL(m Mode, ill Illustration) (string, error) {
	byIll, ok := assets[m]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	u, ok := byIll[ill]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIllustration, ill)
	}
	return u, nil
}

// Select returns the asset of every illustration for mode m.
// The returned map is a copy.
func Select(m Mode) (map[Illustration]string, error) {
	byIll, ok := assets[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	out := make(map[Illustration]string, len(byIll))
	for k, v := range byIll {
		out[k] = v
	}
	return out, nil
}
