package balance

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/css-matcher/pkg/document"
	"github.com/walteh/css-matcher/pkg/render"
	"github.com/walteh/css-matcher/pkg/source"
	"gitlab.com/tozd/go/errors"
)

var ErrUnknownDirection = errors.Base("unknown direction")

const (
	Outward = "outward"
	Inward  = "inward"
)

type Handler struct {
	fs        afero.Fs
	file      string
	caret     source.Caret
	direction string
	format    string
}

func NewBalanceCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "balance [file]",
		Short: "list the balanced ranges around a caret, for expanding or shrinking a selection",
	}

	me.caret.Bind(cmd)
	cmd.Flags().StringVar(&me.direction, "direction", Outward, "outward lists enclosing ranges, inward lists the construct and its first descendants")
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

	var balanced func(*document.Document, context.Context, int) []document.Selection
	switch me.direction {
	case Outward:
		balanced = (*document.Document).ExpandSelectionOffset
	case Inward:
		balanced = (*document.Document).ShrinkSelectionOffset
	default:
		return errors.Errorf("%w: %q (want %s or %s)", ErrUnknownDirection, me.direction, Outward, Inward)
	}

	doc, err := source.NewLoader(me.fs).Load(ctx, me.file)
	if err != nil {
		return err
	}

	offset, err := me.caret.Resolve(doc)
	if err != nil {
		return errors.Errorf("balancing %s: %w", me.file, err)
	}

	sels := balanced(doc, ctx, offset)

	palette := render.Palette{Color: !color.NoColor}
	err = render.Write(out, format, sels, func(w io.Writer) error {
		for _, s := range sels {
			if _, err := fmt.Fprintf(w, "%s %s\n", palette.Location(s.Range.String()), palette.Text(render.Quote(s.Text))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("writing ranges: %w", err)
	}

	return nil
}
