// Package document runs the stylesheet queries for an editor caret given as a
// line and character, and reports results with both offsets and places.
package document

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/css-matcher/pkg/match"
	"github.com/walteh/css-matcher/pkg/position"
	"github.com/walteh/css-matcher/pkg/scan"
	"github.com/walteh/css-matcher/pkg/value"
	"gitlab.com/tozd/go/errors"
)

var ErrPositionOutOfRange = errors.Base("position out of range")

// Document is one stylesheet held in memory.
type Document struct {
	URI  string
	Text string
}

func New(uri, text string) *Document {
	return &Document{URI: uri, Text: text}
}

// Selection is a span of the document with its line/character range.
type Selection struct {
	position.RawPosition `yaml:",inline"`
	Range                position.Range `json:"range" yaml:"range"`
}

// Match is the construct nearest to a caret.
type Match struct {
	Kind match.Kind `json:"kind" yaml:"kind"`
	Full Selection  `json:"full" yaml:"full"`
	Body Selection  `json:"body" yaml:"body"`
}

func (d *Document) selection(r match.Range) Selection {
	raw := position.NewRawPositionFromOffsets(d.Text, r.Start, r.End)
	return Selection{RawPosition: raw, Range: raw.GetRange(d.Text)}
}

func (d *Document) selections(ranges []match.Range) []Selection {
	out := make([]Selection, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, d.selection(r))
	}
	return out
}

// Offset converts a place to a byte offset.
func (d *Document) Offset(place position.Place) (int, error) {
	offset, ok := position.OffsetAt(d.Text, place)
	if !ok {
		return 0, errors.Errorf("%w: %s in %s", ErrPositionOutOfRange, place, d.URI)
	}
	return offset, nil
}

// Place converts a byte offset to a place.
func (d *Document) Place(offset int) (position.Place, error) {
	if err := d.CheckOffset(offset); err != nil {
		return position.Place{}, err
	}
	return position.PlaceAt(d.Text, offset), nil
}

// CheckOffset reports whether offset lies within the document, its end included.
func (d *Document) CheckOffset(offset int) error {
	if !position.NewRawPositionFromOffsets(d.Text, 0, len(d.Text)).Contains(offset) {
		return errors.Errorf("%w: offset %d in %s", ErrPositionOutOfRange, offset, d.URI)
	}
	return nil
}

func (d *Document) Tokens(ctx context.Context) []scan.Token {
	tokens := scan.All(d.Text)
	zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("tokens", len(tokens)).Msg("scanned document")
	return tokens
}

// Match returns the selector or property around place, or nil when there is none.
func (d *Document) Match(ctx context.Context, place position.Place) (*Match, error) {
	offset, err := d.Offset(place)
	if err != nil {
		return nil, err
	}
	return d.MatchOffset(ctx, offset), nil
}

func (d *Document) MatchOffset(ctx context.Context, offset int) *Match {
	res, ok := match.Match(d.Text, offset)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("offset", offset).Msg("no match")
		return nil
	}

	zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("offset", offset).Stringer("kind", res.Kind).Msg("matched")

	return &Match{
		Kind: res.Kind,
		Full: d.selection(res.Range()),
		Body: d.selection(res.Body()),
	}
}

// ExpandSelection lists the ranges around place from innermost to outermost.
func (d *Document) ExpandSelection(ctx context.Context, place position.Place) ([]Selection, error) {
	offset, err := d.Offset(place)
	if err != nil {
		return nil, err
	}
	return d.ExpandSelectionOffset(ctx, offset), nil
}

func (d *Document) ExpandSelectionOffset(ctx context.Context, offset int) []Selection {
	ranges := match.BalancedOutward(d.Text, offset)
	zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("offset", offset).Int("ranges", len(ranges)).Msg("balanced outward")
	return d.selections(ranges)
}

// ShrinkSelection lists the construct around place and its first descendants.
func (d *Document) ShrinkSelection(ctx context.Context, place position.Place) ([]Selection, error) {
	offset, err := d.Offset(place)
	if err != nil {
		return nil, err
	}
	return d.ShrinkSelectionOffset(ctx, offset), nil
}

func (d *Document) ShrinkSelectionOffset(ctx context.Context, offset int) []Selection {
	ranges := match.BalancedInward(d.Text, offset)
	zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("offset", offset).Int("ranges", len(ranges)).Msg("balanced inward")
	return d.selections(ranges)
}

// SplitValueAt splits the value of the property around place. It returns
// nothing when place is not inside a property.
func (d *Document) SplitValueAt(ctx context.Context, place position.Place) ([]Selection, error) {
	offset, err := d.Offset(place)
	if err != nil {
		return nil, err
	}
	return d.SplitValueOffset(ctx, offset), nil
}

func (d *Document) SplitValueOffset(ctx context.Context, offset int) []Selection {
	res, ok := match.Match(d.Text, offset)
	if !ok || res.Kind != match.KindProperty {
		zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("offset", offset).Msg("not inside a property value")
		return nil
	}

	body := res.Body()
	spans := value.SplitValue(body.Text(d.Text))
	ranges := make([]match.Range, 0, len(spans))
	for _, s := range spans {
		ranges = append(ranges, match.Range{Start: body.Start + s.Start, End: body.Start + s.End})
	}

	zerolog.Ctx(ctx).Debug().Str("uri", d.URI).Int("offset", offset).Int("parts", len(ranges)).Msg("split value")
	return d.selections(ranges)
}

// ValuePartOffset returns the part of the property value under the caret,
// edges included, or nil when the caret is not on a part.
func (d *Document) ValuePartOffset(ctx context.Context, offset int) *Selection {
	for _, part := range d.SplitValueOffset(ctx, offset) {
		if part.Contains(offset) {
			return &part
		}
	}
	return nil
}
