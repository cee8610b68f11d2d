package debug_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/css-matcher/pkg/debug"
)

func TestParseCaller(t *testing.T) {
	tests := []struct {
		name     string
		funcName string
		file     string
		want     debug.Caller
	}{
		{
			name:     "module function",
			funcName: "github.com/walteh/css-matcher/pkg/match.Match",
			file:     "/src/pkg/match/match.go",
			want:     debug.Caller{Pkg: "pkg/match", Func: "Match", File: "match.go", Line: 12},
		},
		{
			name:     "module method",
			funcName: "github.com/walteh/css-matcher/pkg/document.(*Document).MatchOffset",
			file:     "/src/pkg/document/document.go",
			want:     debug.Caller{Pkg: "pkg/document", Func: "(*Document).MatchOffset", File: "document.go", Line: 12},
		},
		{
			name:     "command closure",
			funcName: "github.com/walteh/css-matcher/cmd/css-matcher/balance.NewBalanceCommand.func1",
			file:     "/src/cmd/css-matcher/balance/main.go",
			want:     debug.Caller{Pkg: "cmd/css-matcher/balance", Func: "NewBalanceCommand.func1", File: "main.go", Line: 12},
		},
		{
			name:     "other module",
			funcName: "github.com/spf13/cobra.(*Command).execute",
			file:     "/go/pkg/mod/github.com/spf13/cobra@v1.8.1/command.go",
			want:     debug.Caller{Pkg: "github.com/spf13/cobra", Func: "(*Command).execute", File: "command.go", Line: 12},
		},
		{
			name:     "main",
			funcName: "main.main",
			file:     "main.go",
			want:     debug.Caller{Pkg: "main", Func: "main", File: "main.go", Line: 12},
		},
		{
			name:     "no dot",
			funcName: "nodot",
			file:     "x.go",
			want:     debug.Caller{Pkg: "nodot", File: "x.go", Line: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, debug.ParseCaller(tt.funcName, tt.file, 12))
		})
	}
}

func TestCallerFormat(t *testing.T) {
	c := debug.ParseCaller("github.com/walteh/css-matcher/pkg/match.Match", "/src/pkg/match/match.go", 12)
	assert.Equal(t, "pkg/match:match.go:12", c.Format(false))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := debug.WithLogger(context.Background(), &buf, debug.Options{Debug: true})

	zerolog.Ctx(ctx).Debug().Int("pos", 4).Msg("matching")
	assert.Contains(t, buf.String(), "matching")
	assert.Contains(t, buf.String(), "pos=4")

	buf.Reset()
	ctx = debug.WithLogger(context.Background(), &buf, debug.Options{})
	zerolog.Ctx(ctx).Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestWithLoggerTrimsModuleFromCaller(t *testing.T) {
	var buf bytes.Buffer
	ctx := debug.WithLogger(context.Background(), &buf, debug.Options{})

	zerolog.Ctx(ctx).Info().Msg("trimmed")
	assert.Contains(t, buf.String(), "pkg/debug_test:debug_test.go:")
	assert.NotContains(t, buf.String(), "github.com/walteh")
}
