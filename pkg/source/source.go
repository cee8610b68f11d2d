// Package source loads stylesheets for the command line tools.
package source

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/css-matcher/pkg/document"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var ErrNoFiles = errors.Base("no files matched")

// loadLimit bounds the number of files read at once.
const loadLimit = 8

type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Expand resolves every pattern to file paths. Patterns without glob
// characters are returned as they are.
func (l *Loader) Expand(ctx context.Context, patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	var errs error

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}

		base, pat := doublestar.SplitPattern(pattern)
		fsys := l.fs
		if base != "." {
			fsys = afero.NewBasePathFs(l.fs, base)
		}

		matches, err := doublestar.Glob(afero.NewIOFS(fsys), pat, doublestar.WithFilesOnly())
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("expanding %q: %w", pattern, err))
			continue
		}

		zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded glob")

		sort.Strings(matches)
		for _, m := range matches {
			add(path.Join(base, m))
		}
	}

	if errs == nil && len(paths) == 0 {
		return nil, errors.Errorf("%w: %s", ErrNoFiles, strings.Join(patterns, " "))
	}

	return paths, errs
}

// Load reads a single stylesheet.
func (l *Loader) Load(ctx context.Context, name string) (*document.Document, error) {
	data, err := afero.ReadFile(l.fs, name)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", name, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", name).Int("bytes", len(data)).Msg("loaded stylesheet")

	return document.New(name, string(data)), nil
}

// LoadAll expands patterns and reads every file. Files that fail to load are
// reported together in the returned error while the rest are still returned
// in pattern order.
func (l *Loader) LoadAll(ctx context.Context, patterns ...string) ([]*document.Document, error) {
	paths, errs := l.Expand(ctx, patterns...)

	loaded := make([]*document.Document, len(paths))
	failed := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(loadLimit)
	for i, p := range paths {
		g.Go(func() error {
			loaded[i], failed[i] = l.Load(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	docs := make([]*document.Document, 0, len(paths))
	for i, doc := range loaded {
		if failed[i] != nil {
			errs = multierr.Append(errs, failed[i])
			continue
		}
		docs = append(docs, doc)
	}

	return docs, errs
}
