package source

import (
	"github.com/spf13/cobra"
	"github.com/walteh/css-matcher/pkg/document"
	"github.com/walteh/css-matcher/pkg/position"
)

// Caret is a cursor location given on the command line, either as a
// zero-based line and character or as a byte offset.
type Caret struct {
	Line      int
	Character int
	Offset    int
}

func (c *Caret) Bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.Line, "line", 0, "zero-based line of the caret")
	cmd.Flags().IntVar(&c.Character, "character", 0, "zero-based character of the caret, counted in grapheme clusters")
	cmd.Flags().IntVar(&c.Offset, "offset", -1, "byte offset of the caret, overrides --line and --character")
	cmd.MarkFlagsMutuallyExclusive("offset", "line")
	cmd.MarkFlagsMutuallyExclusive("offset", "character")
}

// Resolve returns the byte offset of the caret in doc. A byte offset is used
// as given, so it may point inside a grapheme cluster or at a `\r`.
func (c Caret) Resolve(doc *document.Document) (int, error) {
	if c.Offset >= 0 {
		if err := doc.CheckOffset(c.Offset); err != nil {
			return 0, err
		}
		return c.Offset, nil
	}
	return doc.Offset(position.Place{Line: c.Line, Character: c.Character})
}
