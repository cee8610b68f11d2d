/*
Package scan performs a fast structural pass over stylesheet source (CSS, LESS,
SCSS) and reports selectors, property names, property values and block ends.

It does not build a tree and it does not look inside selectors or values.
The only hard part is the colon:

	a:hover { ... }          pseudo-class, part of the selector
	a::before { ... }        pseudo-element, part of the selector
	@media (min-width: 1px)  media feature, inside an expression
	color: red;              property delimiter
	$width: 10px;            variable delimiter

A colon that may be a property delimiter is held as a candidate until the
next `{`, `;` or `}` decides what it was:

	              ':'                    '{'
	  [text] ------------> [candidate] ---------> Selector (from candidate start)
	                            |
	                            |  ';' '}' EOF
	                            +-------------> PropertyName + PropertyValue
*/
package scan

import (
	"iter"

	"github.com/walteh/css-matcher/pkg/cursor"
)

// Scan calls fn for every token of source in document order. Returning false
// from fn stops the scan before any further input is consumed.
func Scan(source string, fn func(Token) bool) {
	s := newScanner(source, fn)
	s.run()
}

// Tokens returns the token stream of source as a lazy sequence. Breaking out
// of the range loop stops the scan.
func Tokens(source string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		Scan(source, yield)
	}
}

// All collects every token of source.
func All(source string) []Token {
	var tokens []Token
	for tok := range Tokens(source) {
		tokens = append(tokens, tok)
	}
	return tokens
}

type scanner struct {
	c     *cursor.Cursor
	yield func(Token) bool

	// accumulated raw token
	start, end int

	// candidate property name, resolved by the next terminator
	propertyStart, propertyEnd, propertyDelimiter int

	// parenthesis depth
	expression int
}

func newScanner(source string, yield func(Token) bool) *scanner {
	s := &scanner{c: cursor.New(source), yield: yield}
	s.reset()
	return s
}

func (s *scanner) reset() {
	s.start, s.end = -1, -1
	s.propertyStart, s.propertyEnd, s.propertyDelimiter = -1, -1, -1
	s.expression = 0
}

func (s *scanner) run() {
	c := s.c
	for !c.EOF() {
		if skipComment(c) || c.EatWhile(cursor.IsSpace) {
			continue
		}

		c.SetStart(c.Pos())

		switch c.Peek() {
		case cursor.RightCurly:
			c.Skip()
			if !s.flushProperty(c.Start()) {
				return
			}
			if !s.emit(BlockEnd, c.Start(), c.Pos(), c.Start()) {
				return
			}
			s.reset()
		case cursor.Semicolon:
			c.Skip()
			if !s.flushProperty(c.Start()) {
				return
			}
			s.reset()
		case cursor.LeftCurly:
			c.Skip()
			if !s.flushSelector(c.Start()) {
				return
			}
			s.reset()
		case cursor.Colon:
			switch s.colonRole() {
			case colonDelimiter:
				c.Skip()
				s.propertyStart, s.propertyEnd = s.start, s.end
				s.propertyDelimiter = c.Start()
				s.start, s.end = -1, -1
			case colonIgnored:
				c.Skip()
			default:
				s.consume()
			}
		default:
			s.consume()
		}
	}

	s.flushEOF()
}

// consume extends the accumulated token by one unit of content.
func (s *scanner) consume() {
	c := s.c
	if s.start == -1 {
		s.start = c.Pos()
	}

	switch {
	case c.Eat(cursor.LeftRound):
		s.expression++
	case c.Eat(cursor.RightRound):
		if s.expression > 0 {
			s.expression--
		}
	case c.Eat(cursor.Backslash):
		// escaped character, e.g. `.md\:flex`
		c.Skip()
	case c.EatWhileByte(cursor.Colon):
	case ConsumeLiteral(c):
	default:
		c.Skip()
	}

	s.end = c.Pos()
}

type colonRole int

const (
	colonContent colonRole = iota
	colonDelimiter
	colonIgnored
)

func (s *scanner) colonRole() colonRole {
	if s.expression > 0 || s.propertyStart != -1 || s.c.PeekAt(1) == cursor.Colon {
		return colonContent
	}

	if s.start != -1 {
		return colonDelimiter
	}

	// nothing in front of the colon: `:root` starts a selector, a bare `:` is noise
	switch next := s.c.PeekAt(1); {
	case next == 0, cursor.IsSpace(next), next == cursor.Semicolon, next == cursor.LeftCurly, next == cursor.RightCurly:
		return colonIgnored
	}
	return colonContent
}

func (s *scanner) emit(kind Kind, start, end, delimiter int) bool {
	return s.yield(Token{Kind: kind, Start: start, End: end, Delimiter: delimiter})
}

// flushProperty emits whatever is pending when a `;` or `}` at terminator is reached.
func (s *scanner) flushProperty(terminator int) bool {
	if s.propertyStart != -1 {
		if !s.emit(PropertyName, s.propertyStart, s.propertyEnd, s.propertyDelimiter) {
			return false
		}
		if s.start == -1 {
			// explicit empty value
			s.start, s.end = terminator, terminator
		}
		return s.emit(PropertyValue, s.start, s.end, terminator)
	}

	if s.start != -1 {
		return s.emit(PropertyName, s.start, s.end, terminator)
	}

	return true
}

// flushSelector emits the selector in front of the `{` at brace.
func (s *scanner) flushSelector(brace int) bool {
	start, end := s.start, s.end

	switch {
	case s.propertyStart != -1:
		// the candidate property was a compound selector such as `a:hover`
		start = s.propertyStart
		if end == -1 {
			end = s.propertyDelimiter + 1
		}
	case start == -1:
		start, end = brace+1, brace+1
	}

	return s.emit(Selector, start, end, brace)
}

func (s *scanner) flushEOF() {
	if s.propertyStart != -1 {
		if !s.emit(PropertyName, s.propertyStart, s.propertyEnd, s.propertyDelimiter) {
			return
		}
		if s.start != -1 {
			s.emit(PropertyValue, s.start, s.end, NoDelimiter)
		}
		return
	}

	if s.start != -1 {
		s.emit(PropertyName, s.start, s.end, NoDelimiter)
	}
}

// skipComment consumes a `/* */` comment. A comment without a closer runs
// to the end of input.
func skipComment(c *cursor.Cursor) bool {
	if c.Peek() != cursor.Slash || c.PeekAt(1) != cursor.Asterisk {
		return false
	}

	c.SetStart(c.Pos())
	c.SetPos(c.Pos() + 2)
	for !c.EOF() {
		if c.Eat(cursor.Asterisk) {
			if c.Eat(cursor.Slash) {
				return true
			}
			continue
		}
		c.Skip()
	}

	return true
}

// ConsumeLiteral consumes a single- or double-quoted string at the cursor.
// An unterminated string stops in front of the line break or at end of input.
func ConsumeLiteral(c *cursor.Cursor) bool {
	quote := c.Peek()
	if !cursor.IsQuote(quote) {
		return false
	}

	c.SetStart(c.Pos())
	c.Skip()
	for !c.EOF() {
		ch := c.Peek()
		if ch == cursor.LF || ch == cursor.CR {
			break
		}
		c.Skip()
		if ch == quote {
			break
		}
		if ch == cursor.Backslash {
			c.Skip()
		}
	}

	return true
}
