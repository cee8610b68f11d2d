package scan

import (
	"fmt"
)

// Kind identifies the structural role of a token.
type Kind int

const (
	// Selector spans the text in front of a `{`.
	Selector Kind = iota + 1
	// PropertyName spans a property name, or any run of text terminated by `;` or `}`.
	PropertyName
	// PropertyValue spans the text between a property delimiter and its terminator.
	PropertyValue
	// BlockEnd spans a closing `}`.
	BlockEnd
)

func (k Kind) String() string {
	switch k {
	case Selector:
		return "selector"
	case PropertyName:
		return "propertyName"
	case PropertyValue:
		return "propertyValue"
	case BlockEnd:
		return "blockEnd"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NoDelimiter marks a token flushed at end of input without a terminator.
const NoDelimiter = -1

// Token is a half-open [Start, End) span of the source plus the offset of
// the character that terminated it.
type Token struct {
	Kind      Kind
	Start     int
	End       int
	Delimiter int
}

// Value returns the token text.
func (t Token) Value(source string) string {
	if t.Start < 0 || t.End > len(source) || t.End < t.Start {
		return ""
	}
	return source[t.Start:t.End]
}

// HasDelimiter reports whether the token was closed by an explicit terminator.
func (t Token) HasDelimiter() bool {
	return t.Delimiter != NoDelimiter
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d]@%d", t.Kind, t.Start, t.End, t.Delimiter)
}
