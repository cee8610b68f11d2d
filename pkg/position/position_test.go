package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/css-matcher/pkg/position"
)

func TestPlaceAt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   position.Place
	}{
		{
			name:   "empty text",
			text:   "",
			offset: 0,
			want:   position.Place{Line: 0, Character: 0},
		},
		{
			name:   "single line",
			text:   "a { b: c }",
			offset: 4,
			want:   position.Place{Line: 0, Character: 4},
		},
		{
			name:   "second line",
			text:   "a {\n  b: c;\n}",
			offset: 6,
			want:   position.Place{Line: 1, Character: 2},
		},
		{
			name:   "start of line",
			text:   "a {\n}",
			offset: 4,
			want:   position.Place{Line: 1, Character: 0},
		},
		{
			name:   "past the end",
			text:   "a\nb",
			offset: 50,
			want:   position.Place{Line: 1, Character: 1},
		},
		{
			name:   "grapheme clusters",
			text:   "a { content: \"👍🏽x\" }",
			offset: len("a { content: \"👍🏽"),
			want:   position.Place{Line: 0, Character: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, position.PlaceAt(tt.text, tt.offset))
		})
	}
}

func TestOffsetAt(t *testing.T) {
	text := "a {\r\n  b: \"👍🏽\";\n}"

	tests := []struct {
		name   string
		place  position.Place
		want   int
		wantOK bool
	}{
		{name: "origin", place: position.Place{}, want: 0, wantOK: true},
		{name: "crlf line end", place: position.Place{Line: 0, Character: 10}, want: 3, wantOK: true},
		{name: "second line", place: position.Place{Line: 1, Character: 2}, want: 7, wantOK: true},
		{name: "after emoji", place: position.Place{Line: 1, Character: 7}, want: 11 + len("👍🏽"), wantOK: true},
		{name: "last line", place: position.Place{Line: 2, Character: 1}, want: len(text), wantOK: true},
		{name: "missing line", place: position.Place{Line: 5}, want: len(text), wantOK: false},
		{name: "negative", place: position.Place{Line: -1}, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := position.OffsetAt(text, tt.place)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	text := "@media screen {\n  a:hover { color: red; }\n}\n"
	for offset := 0; offset <= len(text); offset++ {
		got, ok := position.OffsetAt(text, position.PlaceAt(text, offset))
		require.True(t, ok)
		require.Equal(t, offset, got)
	}
}

func TestRawPosition(t *testing.T) {
	text := "a {\n  b: c;\n}"
	p := position.NewRawPositionFromOffsets(text, 6, 11)

	assert.Equal(t, "b: c;", p.Text)
	assert.Equal(t, 11, p.EndOffset())
	assert.True(t, p.Contains(6))
	assert.True(t, p.Contains(11))
	assert.False(t, p.Contains(12))
	assert.Equal(t, position.Range{
		Start: position.Place{Line: 1, Character: 2},
		End:   position.Place{Line: 1, Character: 7},
	}, p.GetRange(text))

	assert.Equal(t, "", position.NewRawPositionFromOffsets(text, 9, 2).Text)
}
