package cursor

const (
	LeftCurly  byte = '{'
	RightCurly byte = '}'
	LeftRound  byte = '('
	RightRound byte = ')'
	Asterisk   byte = '*'
	Slash      byte = '/'
	Colon      byte = ':'
	Semicolon  byte = ';'
	Backslash  byte = '\\'
	Comma      byte = ','
	Plus       byte = '+'
	Minus      byte = '-'
	LF         byte = '\n'
	CR         byte = '\r'
)

// IsSpace reports whether ch is CSS whitespace.
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// IsQuote reports whether ch opens a string literal.
func IsQuote(ch byte) bool {
	return ch == '"' || ch == '\''
}

// IsNewline reports whether ch ends a line.
func IsNewline(ch byte) bool {
	return ch == LF || ch == CR || ch == '\f'
}
