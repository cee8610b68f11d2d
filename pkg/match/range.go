package match

import (
	"fmt"

	"github.com/walteh/css-matcher/pkg/cursor"
	"github.com/walteh/css-matcher/pkg/scan"
)

// Range is a half-open [Start, End) span of the source.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether other lies entirely inside r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Text returns the source covered by r.
func (r Range) Text(source string) string {
	if r.Start < 0 || r.End > len(source) || r.Empty() {
		return ""
	}
	return source[r.Start:r.End]
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}

// push appends r unless it is empty or equal to the last element.
func push(ranges []Range, r Range) []Range {
	if r.Empty() {
		return ranges
	}
	if n := len(ranges); n > 0 && ranges[n-1] == r {
		return ranges
	}
	return append(ranges, r)
}

// innerRange strips whitespace from both ends of [start, end).
func innerRange(source string, start, end int) (Range, bool) {
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	for start < end && cursor.IsSpace(source[start]) {
		start++
	}
	for end > start && cursor.IsSpace(source[end-1]) {
		end--
	}
	return Range{Start: start, End: end}, start < end
}

// propertyEnd is the end of a property whose value is tok: right after a `;`
// terminator, otherwise the value end. A `}` belongs to the block, not the
// property, so an empty value closed by `}` ends the property right after the
// name's colon at nameDelimiter.
func propertyEnd(source string, nameDelimiter int, tok scan.Token) int {
	if tok.HasDelimiter() && tok.Delimiter < len(source) && source[tok.Delimiter] == cursor.Semicolon {
		return tok.Delimiter + 1
	}
	if tok.Start == tok.End && nameDelimiter >= 0 && nameDelimiter < tok.Start {
		return nameDelimiter + 1
	}
	return tok.End
}

// valueLimit is the furthest caret offset still inside the property of tok.
func valueLimit(tok scan.Token) int {
	return max(tok.Delimiter, tok.End)
}
