package split_value

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/css-matcher/pkg/render"
	"github.com/walteh/css-matcher/pkg/source"
	"github.com/walteh/css-matcher/pkg/value"
	"gitlab.com/tozd/go/errors"
)

var ErrValueOrFile = errors.Base("give either a value or --file")

type Handler struct {
	fs     afero.Fs
	value  string
	file   string
	caret  source.Caret
	format string
}

func NewSplitCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "split [value]",
		Short: "split a property value into its space and operator separated parts",
		Long: "split a property value into its space and operator separated parts. With --file the value of the " +
			"property under the caret is split and the part under the caret is marked.",
	}

	me.caret.Bind(cmd)
	cmd.Flags().StringVar(&me.file, "file", "", "stylesheet to take the value from")
	cmd.Flags().StringVar(&me.format, "format", "text", "output format: text, json or yaml")
	cmd.Args = cobra.MaximumNArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if (len(args) == 1) == (me.file != "") {
			return ErrValueOrFile
		}
		if len(args) == 1 {
			me.value = args[0]
		}
		return me.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return cmd
}

type Part struct {
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Text    string `json:"text" yaml:"text"`
	Current bool   `json:"current,omitempty" yaml:"current,omitempty"`
}

func (me *Handler) Run(ctx context.Context, out io.Writer) error {
	format, err := render.ParseFormat(me.format)
	if err != nil {
		return err
	}

	var parts []Part
	if me.file != "" {
		parts, err = me.splitFile(ctx)
		if err != nil {
			return err
		}
	} else {
		spans := value.SplitValue(me.value)
		parts = make([]Part, 0, len(spans))
		for _, s := range spans {
			parts = append(parts, Part{Start: s.Start, End: s.End, Text: s.Text(me.value)})
		}
	}

	zerolog.Ctx(ctx).Debug().Str("value", me.value).Str("file", me.file).Int("parts", len(parts)).Msg("split value")

	palette := render.Palette{Color: !color.NoColor}
	err = render.Write(out, format, parts, func(w io.Writer) error {
		for _, p := range parts {
			mark := ""
			if p.Current {
				mark = " " + palette.Kind("*")
			}
			if _, err := fmt.Fprintf(w, "%s %s%s\n", palette.Location(fmt.Sprintf("%d-%d", p.Start, p.End)), palette.Text(p.Text), mark); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Errorf("writing parts: %w", err)
	}

	return nil
}

func (me *Handler) splitFile(ctx context.Context) ([]Part, error) {
	doc, err := source.NewLoader(me.fs).Load(ctx, me.file)
	if err != nil {
		return nil, err
	}

	offset, err := me.caret.Resolve(doc)
	if err != nil {
		return nil, errors.Errorf("splitting %s: %w", me.file, err)
	}

	current := doc.ValuePartOffset(ctx, offset)

	sels := doc.SplitValueOffset(ctx, offset)
	parts := make([]Part, 0, len(sels))
	for _, s := range sels {
		parts = append(parts, Part{
			Start:   s.Offset,
			End:     s.EndOffset(),
			Text:    s.Text,
			Current: current != nil && current.Offset == s.Offset,
		})
	}

	return parts, nil
}
