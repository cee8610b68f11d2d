package match

import (
	"github.com/walteh/css-matcher/pkg/rangepool"
	"github.com/walteh/css-matcher/pkg/scan"
)

// BalancedOutward returns every range that encloses pos, innermost first.
// Each enclosing block contributes its trimmed body and then its full range;
// an enclosing property contributes its value and then its full range.
func BalancedOutward(source string, pos int) []Range {
	pool := rangepool.New()
	var stack rangepool.Stack
	var result []Range
	property := rangepool.Nil

	scan.Scan(source, func(tok scan.Token) bool {
		if stack.Len() == 0 && startsAfter(tok, pos) {
			// nothing starting after the caret at top level can enclose it
			return false
		}

		switch tok.Kind {
		case scan.Selector:
			stack.Push(pool.Alloc(tok.Start, tok.End, tok.Delimiter))
		case scan.BlockEnd:
			h := stack.Pop()
			open := pool.Get(h)
			if open == nil {
				break
			}
			if open.Start < pos && pos < tok.End {
				if inner, ok := innerRange(source, open.Delimiter+1, tok.Start); ok {
					result = push(result, inner)
				}
				result = push(result, Range{Start: open.Start, End: tok.End})
			}
			pool.Release(h)
			if stack.Len() == 0 && len(result) > 0 {
				return false
			}
		case scan.PropertyName:
			pool.Release(property)
			property = pool.Alloc(tok.Start, tok.End, tok.Delimiter)
		case scan.PropertyValue:
			if name := pool.Get(property); name != nil && name.Start <= pos && pos < valueLimit(tok) {
				result = push(result, Range{Start: tok.Start, End: tok.End})
				result = push(result, Range{Start: name.Start, End: propertyEnd(source, name.Delimiter, tok)})
			}
		}

		if tok.Kind != scan.PropertyName {
			pool.Release(property)
			property = rangepool.Nil
		}
		return true
	})

	return result
}

// startsAfter reports whether tok opens a construct that cannot enclose pos.
// A property includes its first character, a rule does not.
func startsAfter(tok scan.Token, pos int) bool {
	switch tok.Kind {
	case scan.Selector:
		return tok.Start >= pos
	case scan.PropertyName:
		return tok.Start > pos
	}
	return false
}
