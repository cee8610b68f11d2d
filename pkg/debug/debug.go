// Package debug builds the console logger used by the css-matcher tools.
package debug

import (
	"context"
	"fmt"
	"io"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

type Options struct {
	Debug     bool
	WithColor bool
	// TimeFormat defaults to millisecond precision without a timezone
	TimeFormat string
}

// NewLogger returns a console logger writing to w with time and caller hooks.
func NewLogger(w io.Writer, opts Options) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !opts.WithColor,
	}

	return zerolog.New(out).
		Level(level).
		Hook(TimeHook{Format: opts.TimeFormat}).
		Hook(CallerHook{WithColor: opts.WithColor})
}

// WithLogger attaches a new console logger to ctx so zerolog.Ctx finds it.
func WithLogger(ctx context.Context, w io.Writer, opts Options) context.Context {
	return NewLogger(w, opts).WithContext(ctx)
}

type TimeHook struct {
	Format string
}

func (t TimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	format := t.Format
	if format == "" {
		format = "2006-01-02T15:04:05.0000Z"
	}
	e.Str("time", time.Now().Format(format))
}

type CallerHook struct {
	WithColor bool
}

// callerSkip is the number of frames between Run and the Msg call site.
const callerSkip = 3

func (c CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return
	}

	e.Str("caller", ParseCaller(runtime.FuncForPC(pc).Name(), file, line).Format(c.WithColor))
}

// modulePath is cut from the package of callers inside this module.
const modulePath = "github.com/walteh/css-matcher/"

// Caller is the call site of a log event.
type Caller struct {
	Pkg  string
	Func string
	File string
	Line int
}

// ParseCaller splits a runtime function name such as
// github.com/walteh/css-matcher/pkg/document.(*Document).Match into package
// and function, and keeps only the base name of file.
func ParseCaller(funcName, file string, line int) Caller {
	pkg, fn := splitFuncName(funcName)
	return Caller{
		Pkg:  strings.TrimPrefix(pkg, modulePath),
		Func: fn,
		File: path.Base(file),
		Line: line,
	}
}

func splitFuncName(name string) (pkg, function string) {
	lastSlash := max(strings.LastIndexByte(name, '/'), 0)

	firstDot := strings.IndexByte(name[lastSlash:], '.')
	if firstDot < 0 {
		return name, ""
	}
	firstDot += lastSlash

	return name[:firstDot], name[firstDot+1:]
}

// Format renders the caller as pkg:file:line.
func (c Caller) Format(colorize bool) string {
	if !colorize {
		return fmt.Sprintf("%s:%s:%d", c.Pkg, c.File, c.Line)
	}

	sep := color.New(color.Faint).Sprint(":")
	return c.Pkg + sep +
		color.New(color.Bold).Sprint(c.File) + sep +
		color.New(color.FgHiRed, color.Bold).Sprintf("%d", c.Line)
}
