// Package render writes command results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.Base("unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Write encodes v in the given format. Text output is delegated to text.
func Write(w io.Writer, format Format, v any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return errors.Errorf("closing yaml encoder: %w", err)
		}
		return nil
	case FormatText:
		return text(w)
	default:
		return errors.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Palette colors text output. The zero value prints plain text.
type Palette struct {
	Color bool
}

func (p Palette) paint(s string, attrs ...color.Attribute) string {
	if !p.Color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func (p Palette) Kind(s string) string {
	return p.paint(s, color.FgCyan, color.Bold)
}

func (p Palette) Location(s string) string {
	return p.paint(s, color.Faint)
}

func (p Palette) Text(s string) string {
	return p.paint(s, color.FgGreen)
}

// Quote shortens s to a single line for display.
func Quote(s string) string {
	const limit = 60
	r := []rune(s)
	if len(r) > limit {
		return fmt.Sprintf("%q...", string(r[:limit]))
	}
	return fmt.Sprintf("%q", s)
}
