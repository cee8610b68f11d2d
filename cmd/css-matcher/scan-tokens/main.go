package scan_tokens

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/css-matcher/pkg/render"
	"github.com/walteh/css-matcher/pkg/scan"
	"github.com/walteh/css-matcher/pkg/source"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	fs       afero.Fs
	patterns []string
	format   string
}

func NewScanCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "scan [glob...]",
		Short: "print the selector and property tokens of each matching stylesheet",
	}

	cmd.Flags().StringVar(&me.format, "format", "text", "output format: text, json or yaml")
	cmd.Args = cobra.MinimumNArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.patterns = args
		return me.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return cmd
}

type Token struct {
	Kind      scan.Kind `json:"kind" yaml:"kind"`
	Start     int       `json:"start" yaml:"start"`
	End       int       `json:"end" yaml:"end"`
	Delimiter int       `json:"delimiter" yaml:"delimiter"`
	Text      string    `json:"text" yaml:"text"`
}

type File struct {
	URI    string  `json:"uri" yaml:"uri"`
	Tokens []Token `json:"tokens" yaml:"tokens"`
}

func (me *Handler) Run(ctx context.Context, out io.Writer) error {
	format, err := render.ParseFormat(me.format)
	if err != nil {
		return err
	}

	docs, loadErr := source.NewLoader(me.fs).LoadAll(ctx, me.patterns...)

	files := make([]File, 0, len(docs))
	for _, doc := range docs {
		toks := doc.Tokens(ctx)
		file := File{URI: doc.URI, Tokens: make([]Token, 0, len(toks))}
		for _, t := range toks {
			file.Tokens = append(file.Tokens, Token{
				Kind:      t.Kind,
				Start:     t.Start,
				End:       t.End,
				Delimiter: t.Delimiter,
				Text:      t.Value(doc.Text),
			})
		}
		files = append(files, file)
	}

	zerolog.Ctx(ctx).Debug().Int("files", len(files)).Msg("scanned stylesheets")

	palette := render.Palette{Color: !color.NoColor}
	err = render.Write(out, format, files, func(w io.Writer) error {
		for _, f := range files {
			for _, t := range f.Tokens {
				loc := palette.Location(fmt.Sprintf("%s:%d-%d", f.URI, t.Start, t.End))
				if _, err := fmt.Fprintf(w, "%s %s %s\n", loc, palette.Kind(t.Kind.String()), palette.Text(render.Quote(t.Text))); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("writing tokens: %w", err)
	}

	if loadErr != nil {
		return errors.Errorf("loading stylesheets: %w", loadErr)
	}

	return nil
}
