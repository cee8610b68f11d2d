package match_caret

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/css-matcher/pkg/render"
	"github.com/walteh/css-matcher/pkg/source"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	fs     afero.Fs
	file   string
	caret  source.Caret
	format string
}

func NewMatchCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "print the selector or property around a caret",
	}

	me.caret.Bind(cmd)
	cmd.Flags().StringVar(&me.format, "format", "text", "output format: text, json or yaml")
	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.file = args[0]
		return me.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, out io.Writer) error {
	format, err := render.ParseFormat(me.format)
	if err != nil {
		return err
	}

	doc, err := source.NewLoader(me.fs).Load(ctx, me.file)
	if err != nil {
		return err
	}

	offset, err := me.caret.Resolve(doc)
	if err != nil {
		return errors.Errorf("matching %s: %w", me.file, err)
	}

	m := doc.MatchOffset(ctx, offset)

	palette := render.Palette{Color: !color.NoColor}
	err = render.Write(out, format, m, func(w io.Writer) error {
		if m == nil {
			_, err := fmt.Fprintln(w, "no match")
			return err
		}
		_, err := fmt.Fprintf(w, "%s %s %s\n%s %s %s\n",
			palette.Kind(m.Kind.String()), palette.Location(m.Full.Range.String()), palette.Text(render.Quote(m.Full.Text)),
			palette.Kind("body"), palette.Location(m.Body.Range.String()), palette.Text(render.Quote(m.Body.Text)),
		)
		return err
	})
	if err != nil {
		return errors.Errorf("writing match: %w", err)
	}

	return nil
}
