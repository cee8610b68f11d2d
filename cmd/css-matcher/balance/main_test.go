package balance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/css-matcher/cmd/css-matcher/balance"
	"github.com/walteh/css-matcher/pkg/document"
	"gitlab.com/tozd/go/errors"
)

const sheet = "a {\n  margin: 10px 20px;\n  b:hover { color: red }\n}\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "sheet.css", []byte(sheet), 0o644))

	var out bytes.Buffer
	cmd := balance.NewBalanceCommand(fs)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBalanceInwardText(t *testing.T) {
	out, err := execute(t, "sheet.css", "--direction", "inward", "--line", "2", "--character", "20")
	require.NoError(t, err)

	assert.Equal(t, "2:12-2:22 \"color: red\"\n2:19-2:22 \"red\"\n", out)
}

func TestBalanceOutwardJSON(t *testing.T) {
	// offset 45 is inside `red`
	out, err := execute(t, "sheet.css", "--offset", "45", "--format", "json")
	require.NoError(t, err)

	var sels []document.Selection
	require.NoError(t, json.Unmarshal([]byte(out), &sels))

	texts := make([]string, 0, len(sels))
	for _, s := range sels {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{
		"red",
		"color: red",
		"b:hover { color: red }",
		"margin: 10px 20px;\n  b:hover { color: red }",
		sheet[:len(sheet)-1],
	}, texts)
	assert.Equal(t, 44, sels[0].Offset)
}

func TestBalanceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "unknown direction", args: []string{"sheet.css", "--direction", "sideways"}, is: balance.ErrUnknownDirection},
		{name: "line out of range", args: []string{"sheet.css", "--line", "40"}, is: document.ErrPositionOutOfRange},
		{name: "offset out of range", args: []string{"sheet.css", "--offset", "400"}, is: document.ErrPositionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is))
		})
	}

	_, err := execute(t, "missing.css")
	require.Error(t, err)
}
