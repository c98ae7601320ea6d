// Package env provides the keyed environment widgets read during layout and
// paint: colors, metric values, insets, and strings, resolved against an
// immutable value set. An Env is derived, never mutated; overrides produce a
// new Env and leave the original untouched.
package env

import (
	"fmt"

	"github.com/go-joist/joist/pkg/errors"
	"github.com/go-joist/joist/pkg/graphics"
)

// ColorKey names a color value in the environment.
type ColorKey string

// FloatKey names a scalar value in the environment.
type FloatKey string

// InsetsKey names an insets value in the environment.
type InsetsKey string

// StringKey names a string value in the environment.
type StringKey string

// Built-in keys. Every key used by the exemplar widget set is declared here
// so overlays can be validated against the known set.
const (
	WindowBackground ColorKey = "window.background"
	TextColor        ColorKey = "text.color"

	ButtonBackground       ColorKey = "button.background"
	ButtonBackgroundHover  ColorKey = "button.background.hover"
	ButtonBackgroundActive ColorKey = "button.background.active"
	ButtonText             ColorKey = "button.text"

	TextBoxBackground    ColorKey = "textbox.background"
	TextBoxText          ColorKey = "textbox.text"
	TextBoxBorder        ColorKey = "textbox.border"
	TextBoxBorderFocused ColorKey = "textbox.border.focused"

	FontScale          FloatKey = "font.scale"
	ButtonCornerRadius FloatKey = "button.corner_radius"
	TextBoxBorderWidth FloatKey = "textbox.border_width"

	ButtonPadding  InsetsKey = "button.padding"
	TextBoxPadding InsetsKey = "textbox.padding"

	ThemeName StringKey = "theme.name"
)

// Env is an immutable set of keyed values.
type Env struct {
	colors  map[ColorKey]graphics.Color
	floats  map[FloatKey]float64
	insets  map[InsetsKey]graphics.Insets
	strings map[StringKey]string
}

// Default returns the built-in environment.
func Default() *Env {
	return &Env{
		colors: map[ColorKey]graphics.Color{
			WindowBackground:       graphics.RGB(0x28, 0x28, 0x2A),
			TextColor:              graphics.ColorWhite,
			ButtonBackground:       graphics.RGB(0x40, 0x44, 0x48),
			ButtonBackgroundHover:  graphics.RGB(0x50, 0x55, 0x5A),
			ButtonBackgroundActive: graphics.RGB(0x30, 0x33, 0x36),
			ButtonText:             graphics.ColorWhite,
			TextBoxBackground:      graphics.RGB(0x1E, 0x1E, 0x20),
			TextBoxText:            graphics.ColorWhite,
			TextBoxBorder:          graphics.RGB(0x5A, 0x5A, 0x5E),
			TextBoxBorderFocused:   graphics.RGB(0x4A, 0x8F, 0xE8),
		},
		floats: map[FloatKey]float64{
			FontScale:          1,
			ButtonCornerRadius: 4,
			TextBoxBorderWidth: 1,
		},
		insets: map[InsetsKey]graphics.Insets{
			ButtonPadding:  graphics.SymmetricInsets(12, 6),
			TextBoxPadding: graphics.SymmetricInsets(6, 4),
		},
		strings: map[StringKey]string{
			ThemeName: "default",
		},
	}
}

// Color returns the color bound to the key. Reading an unbound key is a
// programming error: fatal in debug mode, transparent plus a report
// otherwise.
func (e *Env) Color(k ColorKey) graphics.Color {
	if v, ok := e.colors[k]; ok {
		return v
	}
	e.missing("env.Color", string(k))
	return graphics.ColorTransparent
}

// Float returns the scalar bound to the key.
func (e *Env) Float(k FloatKey) float64 {
	if v, ok := e.floats[k]; ok {
		return v
	}
	e.missing("env.Float", string(k))
	return 0
}

// Insets returns the insets bound to the key.
func (e *Env) Insets(k InsetsKey) graphics.Insets {
	if v, ok := e.insets[k]; ok {
		return v
	}
	e.missing("env.Insets", string(k))
	return graphics.Insets{}
}

// String returns the string bound to the key.
func (e *Env) String(k StringKey) string {
	if v, ok := e.strings[k]; ok {
		return v
	}
	e.missing("env.String", string(k))
	return ""
}

func (e *Env) missing(op, key string) {
	err := fmt.Errorf("environment key %q is not bound", key)
	if errors.DebugMode {
		panic(&errors.JoistError{Op: op, Kind: errors.KindConfig, Err: err})
	}
	errors.Report(&errors.JoistError{Op: op, Kind: errors.KindConfig, Err: err})
}

// WithColor returns a derived environment with the key rebound.
func (e *Env) WithColor(k ColorKey, v graphics.Color) *Env {
	d := e.clone()
	d.colors[k] = v
	return d
}

// WithFloat returns a derived environment with the key rebound.
func (e *Env) WithFloat(k FloatKey, v float64) *Env {
	d := e.clone()
	d.floats[k] = v
	return d
}

// WithInsets returns a derived environment with the key rebound.
func (e *Env) WithInsets(k InsetsKey, v graphics.Insets) *Env {
	d := e.clone()
	d.insets[k] = v
	return d
}

// WithString returns a derived environment with the key rebound.
func (e *Env) WithString(k StringKey, v string) *Env {
	d := e.clone()
	d.strings[k] = v
	return d
}

func (e *Env) clone() *Env {
	d := &Env{
		colors:  make(map[ColorKey]graphics.Color, len(e.colors)),
		floats:  make(map[FloatKey]float64, len(e.floats)),
		insets:  make(map[InsetsKey]graphics.Insets, len(e.insets)),
		strings: make(map[StringKey]string, len(e.strings)),
	}
	for k, v := range e.colors {
		d.colors[k] = v
	}
	for k, v := range e.floats {
		d.floats[k] = v
	}
	for k, v := range e.insets {
		d.insets[k] = v
	}
	for k, v := range e.strings {
		d.strings[k] = v
	}
	return d
}
