// Package match answers caret-position queries over stylesheet source using
// the structural token stream of package scan.
package match

import (
	"fmt"

	"github.com/walteh/css-matcher/pkg/rangepool"
	"github.com/walteh/css-matcher/pkg/scan"
)

// Kind is the construct a Result describes.
type Kind int

const (
	KindSelector Kind = iota + 1
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindSelector:
		return "selector"
	case KindProperty:
		return "property"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the construct nearest to a caret. For a selector, Start..End is
// the whole rule and BodyStart..BodyEnd the text between the braces. For a
// property, Start..End runs from the name through the terminator and
// BodyStart..BodyEnd is the value.
type Result struct {
	Kind      Kind `json:"type" yaml:"type"`
	Start     int  `json:"start" yaml:"start"`
	End       int  `json:"end" yaml:"end"`
	BodyStart int  `json:"bodyStart" yaml:"bodyStart"`
	BodyEnd   int  `json:"bodyEnd" yaml:"bodyEnd"`
}

func (r Result) Range() Range {
	return Range{Start: r.Start, End: r.End}
}

func (r Result) Body() Range {
	return Range{Start: r.BodyStart, End: r.BodyEnd}
}

// Match finds the selector or property that directly contains pos. A caret
// sitting on a brace boundary is outside the rule.
func Match(source string, pos int) (Result, bool) {
	pool := rangepool.New()
	var stack rangepool.Stack
	pending := rangepool.Nil

	var result Result
	found := false

	releasePending := func() {
		pool.Release(pending)
		pending = rangepool.Nil
	}

	scan.Scan(source, func(tok scan.Token) bool {
		switch tok.Kind {
		case scan.Selector:
			releasePending()
			stack.Push(pool.Alloc(tok.Start, tok.End, tok.Delimiter))
		case scan.BlockEnd:
			releasePending()
			h := stack.Pop()
			if open := pool.Get(h); open != nil && open.Start < pos && pos < tok.End {
				result = Result{
					Kind:      KindSelector,
					Start:     open.Start,
					End:       tok.End,
					BodyStart: open.Delimiter + 1,
					BodyEnd:   tok.Start,
				}
				found = true
				return false
			}
			pool.Release(h)
		case scan.PropertyName:
			releasePending()
			pending = pool.Alloc(tok.Start, tok.End, tok.Delimiter)
		case scan.PropertyValue:
			if name := pool.Get(pending); name != nil && name.Start < pos && pos < tok.End {
				end := propertyEnd(source, name.Delimiter, tok)
				bodyStart, bodyEnd := tok.Start, tok.End
				if bodyStart > end {
					// empty value closed by `}`
					bodyStart, bodyEnd = end, end
				}
				result = Result{
					Kind:      KindProperty,
					Start:     name.Start,
					End:       end,
					BodyStart: bodyStart,
					BodyEnd:   bodyEnd,
				}
				found = true
				return false
			}
			releasePending()
		}
		return true
	})

	return result, found
}
