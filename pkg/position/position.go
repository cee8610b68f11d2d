// Package position converts between byte offsets and the line/character
// places editors use for carets.
package position

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v13/textseg"
)

// Place is a zero-based line and character. Characters are counted in
// grapheme clusters, so an emoji with modifiers is one character.
type Place struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

type Range struct {
	Start Place `json:"start" yaml:"start"`
	End   Place `json:"end" yaml:"end"`
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// RawPosition represents a span of the source text
type RawPosition struct {
	// Offset is the byte offset in the source text
	Offset int `json:"offset" yaml:"offset"`
	// Text is the actual text at this position
	Text string `json:"text" yaml:"text"`
}

// NewRawPositionFromOffsets slices fileText between two byte offsets.
func NewRawPositionFromOffsets(fileText string, start, end int) RawPosition {
	start = clamp(start, len(fileText))
	end = clamp(end, len(fileText))
	if end < start {
		end = start
	}
	return RawPosition{Text: fileText[start:end], Offset: start}
}

func (p RawPosition) Length() int {
	return len(p.Text)
}

// EndOffset is the offset right after the text.
func (p RawPosition) EndOffset() int {
	return p.Offset + p.Length()
}

// Contains reports whether a caret at offset touches this span, edges included.
func (p RawPosition) Contains(offset int) bool {
	return offset >= p.Offset && offset <= p.EndOffset()
}

// GetRange calculates the line/character range of the span
func (p RawPosition) GetRange(fileText string) Range {
	return Range{
		Start: PlaceAt(fileText, p.Offset),
		End:   PlaceAt(fileText, p.EndOffset()),
	}
}

func (p RawPosition) String() string {
	return fmt.Sprintf("%s@%d", p.Text, p.Offset)
}

// PlaceAt returns the line and character of a byte offset. Offsets outside
// the text are clamped to it.
func PlaceAt(text string, offset int) Place {
	offset = clamp(offset, len(text))

	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	line := strings.Count(text[:lineStart], "\n")

	return Place{Line: line, Character: graphemeCount(text[lineStart:offset])}
}

// OffsetAt returns the byte offset of a place. A character past the end of
// its line lands on the line end. It reports false when the line does not
// exist.
func OffsetAt(text string, p Place) (int, bool) {
	if p.Line < 0 || p.Character < 0 {
		return 0, false
	}

	lineStart := 0
	for i := 0; i < p.Line; i++ {
		next := strings.IndexByte(text[lineStart:], '\n')
		if next == -1 {
			return len(text), false
		}
		lineStart += next + 1
	}

	lineEnd := len(text)
	if next := strings.IndexByte(text[lineStart:], '\n'); next != -1 {
		lineEnd = lineStart + next
	}
	if lineEnd > lineStart && text[lineEnd-1] == '\r' {
		lineEnd--
	}

	line := []byte(text[lineStart:lineEnd])
	off := 0
	for i := 0; i < p.Character && off < len(line); i++ {
		advance, _, err := textseg.ScanGraphemeClusters(line[off:], true)
		if err != nil || advance == 0 {
			break
		}
		off += advance
	}

	return lineStart + off, true
}

func graphemeCount(s string) int {
	if s == "" {
		return 0
	}
	n, err := textseg.TokenCount([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return utf8.RuneCountInString(s)
	}
	return n
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
