// Package value splits a CSS property value into its space and operator
// separated parts.
package value

import (
	"github.com/walteh/css-matcher/pkg/cursor"
	"github.com/walteh/css-matcher/pkg/scan"
)

// Span is a half-open [Start, End) range relative to the value string.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (s Span) Text(value string) string {
	if s.Start < 0 || s.End > len(value) || s.End <= s.Start {
		return ""
	}
	return value[s.Start:s.End]
}

// SplitValue returns the parts of value in order. `,`, `/`, `*` and `+`
// always separate parts, `-` only when followed by whitespace (so
// `no-repeat` stays whole), and whitespace only outside parentheses (so
// `calc(100% - 80px)` stays whole). Quoted strings are never split.
func SplitValue(value string) []Span {
	c := cursor.New(value)
	offset := -1
	expression := 0
	var result []Span

	for !c.EOF() {
		pos := c.Pos()
		if c.EatFunc(cursor.IsSpace) || c.EatFunc(isOperator) || eatMinusOperator(c) {
			if expression == 0 && offset != -1 {
				result = append(result, Span{Start: offset, End: pos})
				offset = -1
			}
			c.EatWhile(cursor.IsSpace)
			continue
		}

		if offset == -1 {
			offset = c.Pos()
		}

		switch {
		case c.Eat(cursor.LeftRound):
			expression++
		case c.Eat(cursor.RightRound):
			if expression > 0 {
				expression--
			}
		case scan.ConsumeLiteral(c):
		default:
			c.Skip()
		}
	}

	if offset != -1 && offset != c.Pos() {
		result = append(result, Span{Start: offset, End: c.Pos()})
	}

	return result
}

// Tokens returns the text of every part of value.
func Tokens(value string) []string {
	spans := SplitValue(value)
	tokens := make([]string, 0, len(spans))
	for _, s := range spans {
		tokens = append(tokens, s.Text(value))
	}
	return tokens
}

func isOperator(ch byte) bool {
	switch ch {
	case cursor.Comma, cursor.Slash, cursor.Asterisk, cursor.Plus:
		return true
	}
	return false
}

// eatMinusOperator consumes a `-` used as subtraction, which CSS requires to
// be surrounded by whitespace.
func eatMinusOperator(c *cursor.Cursor) bool {
	if c.Peek() == cursor.Minus && cursor.IsSpace(c.PeekAt(1)) {
		c.Skip()
		return true
	}
	return false
}
