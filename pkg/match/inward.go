package match

import (
	"github.com/walteh/css-matcher/pkg/rangepool"
	"github.com/walteh/css-matcher/pkg/scan"
)

// BalancedInward returns the innermost construct around pos followed by the
// chain of first descendants below it, outermost first. Every node
// contributes its full range and then its body.
//
// Blocks that close without containing pos are kept only when they are the
// first child of their parent, so the tree never grows beyond a single
// first-child chain per open block.
func BalancedInward(source string, pos int) []Range {
	pool := rangepool.New()
	var stack rangepool.Stack
	var result []Range

	pending := rangepool.Nil
	pendingChild := rangepool.Nil

	releasePending := func() {
		pool.Release(pending)
		pending = rangepool.Nil
		pendingChild = rangepool.Nil
	}

	scan.Scan(source, func(tok scan.Token) bool {
		switch tok.Kind {
		case scan.Selector:
			releasePending()
			stack.Push(pool.Alloc(tok.Start, tok.End, tok.Delimiter))

		case scan.BlockEnd:
			releasePending()
			h := stack.Pop()
			node := pool.Get(h)
			if node == nil {
				return true
			}

			if node.Start <= pos && pos <= tok.End {
				result = push(result, Range{Start: node.Start, End: tok.End})
				if inner, ok := innerRange(source, node.Delimiter+1, tok.Start); ok {
					result = push(result, inner)
				}
				for child := pool.Get(node.Child); child != nil; child = pool.Get(child.Child) {
					result = push(result, Range{Start: child.Start, End: child.End})
					result = push(result, Range{Start: child.BodyStart, End: child.BodyEnd})
				}
				return false
			}

			parent := pool.Get(stack.Top())
			if parent == nil || parent.Child != rangepool.Nil {
				pool.ReleaseChain(h)
				return true
			}

			node.End = tok.End
			if inner, ok := innerRange(source, node.Delimiter+1, tok.Start); ok {
				node.BodyStart, node.BodyEnd = inner.Start, inner.End
			}
			parent.Child = h

		case scan.PropertyName:
			releasePending()
			pending = pool.Alloc(tok.Start, tok.End, tok.Delimiter)
			parentHandle := stack.Top()
			if parent := pool.Get(parentHandle); parent != nil && parent.Child == rangepool.Nil {
				// Alloc may grow the arena, so the parent is looked up again afterwards
				child := pool.Alloc(tok.Start, tok.End, tok.Delimiter)
				pool.Get(parentHandle).Child = child
				pendingChild = child
			}

		case scan.PropertyValue:
			name := pool.Get(pending)
			if name != nil && name.Start <= pos && pos <= valueLimit(tok) {
				result = push(result, Range{Start: name.Start, End: propertyEnd(source, name.Delimiter, tok)})
				result = push(result, Range{Start: tok.Start, End: tok.End})
				return false
			}
			if child := pool.Get(pendingChild); child != nil {
				child.End = propertyEnd(source, child.Delimiter, tok)
				child.BodyStart, child.BodyEnd = tok.Start, tok.End
			}
			releasePending()
		}

		return true
	})

	return result
}
