package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/css-matcher/pkg/value"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "10px 20px", want: []string{"10px", "20px"}},
		{input: " 10px   20px  ", want: []string{"10px", "20px"}},
		{input: "10px, 20px", want: []string{"10px", "20px"}},
		{input: "20px", want: []string{"20px"}},
		{input: "no-repeat, 10px - 5", want: []string{"no-repeat", "10px", "5"}},
		{input: `url("foo bar") no-repeat`, want: []string{`url("foo bar")`, "no-repeat"}},
		{input: "--my-prop", want: []string{"--my-prop"}},
		{input: "calc(100% - 80px)", want: []string{"calc(100% - 80px)"}},
		{input: "rgba(0, 0, 0, .5) 1px/2px", want: []string{"rgba(0, 0, 0, .5)", "1px", "2px"}},
		{input: "a*b+c", want: []string{"a", "b", "c"}},
		{input: `'unterminated value`, want: []string{`'unterminated value`}},
		{input: "", want: []string{}},
		{input: " , / ", want: []string{}},
		{input: "fn(a) b)", want: []string{"fn(a)", "b)"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Tokens(tt.input))
		})
	}
}

func TestSplitValueOffsets(t *testing.T) {
	got := value.SplitValue(" 10px   20px  ")
	assert.Equal(t, []value.Span{{Start: 1, End: 5}, {Start: 8, End: 12}}, got)
	assert.Nil(t, value.SplitValue("   "))
	assert.Equal(t, "", value.Span{Start: 3, End: 1}.Text("abc"))
}
