package match_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/css-matcher/pkg/match"
)

const stylesheet = `
@media (min-width: 900px) and screen {
    $width: 20px;
    foo {
        .bar[title="Enable"] {
            padding: 10px;
            margin: 20px;
            position: absolute;
        }
    }

    div {
        font-weight: bold;
        font-size: 12px;
    }

    .empty{}
}

blockquote.incut {
    margin: 20px 10px;
}
`

// offsets of the interesting places in stylesheet
type places struct {
	mediaStart, mediaOpen, mediaClose int
	mediaBodyStart, mediaBodyEnd      int
	fooStart, fooOpen, fooClose       int
	barStart, barOpen, barClose       int
	barBodyEnd                        int
	paddingStart, paddingValue        int
	paddingSemicolon                  int
	emptyStart                        int
	quoteStart, quoteClose            int
	quoteMargin, quoteValue           int
	quoteSemicolon                    int
}

func index(t *testing.T, sub string) int {
	t.Helper()
	i := strings.Index(stylesheet, sub)
	require.GreaterOrEqual(t, i, 0, "fixture is missing %q", sub)
	return i
}

func locate(t *testing.T) places {
	t.Helper()
	var p places

	p.mediaStart = index(t, "@media")
	p.mediaOpen = index(t, "screen {") + len("screen ")
	p.mediaClose = index(t, "\n}\n\nblockquote") + 1
	p.mediaBodyStart = index(t, "$width")
	p.mediaBodyEnd = index(t, ".empty{}") + len(".empty{}")

	p.fooStart = index(t, "foo {")
	p.fooOpen = p.fooStart + len("foo ")
	p.fooClose = index(t, "}\n\n    div")

	p.barStart = index(t, ".bar[")
	p.barOpen = index(t, `"] {`) + len(`"] `)
	p.barClose = index(t, "}\n    }\n\n    div")
	p.barBodyEnd = index(t, "absolute;") + len("absolute;")

	p.paddingStart = index(t, "padding")
	p.paddingValue = index(t, "10px;")
	p.paddingSemicolon = p.paddingValue + len("10px")

	p.emptyStart = index(t, ".empty")

	p.quoteStart = index(t, "blockquote")
	p.quoteClose = len(stylesheet) - len("}\n")
	p.quoteMargin = index(t, "margin: 20px 10px")
	p.quoteValue = index(t, "20px 10px")
	p.quoteSemicolon = p.quoteValue + len("20px 10px")

	require.Equal(t, byte('{'), stylesheet[p.mediaOpen])
	require.Equal(t, byte('}'), stylesheet[p.mediaClose])
	require.Equal(t, byte('{'), stylesheet[p.fooOpen])
	require.Equal(t, byte('}'), stylesheet[p.fooClose])
	require.Equal(t, byte('{'), stylesheet[p.barOpen])
	require.Equal(t, byte('}'), stylesheet[p.barClose])
	require.Equal(t, byte(';'), stylesheet[p.paddingSemicolon])
	require.Equal(t, byte('}'), stylesheet[p.quoteClose])
	require.Equal(t, byte(';'), stylesheet[p.quoteSemicolon])

	return p
}

func rng(start, end int) match.Range {
	return match.Range{Start: start, End: end}
}
