// Package cursor provides a position-advancing primitive over stylesheet source text.
package cursor

// Cursor walks a source string byte by byte. It never modifies the source,
// only its own position.
type Cursor struct {
	src   string
	pos   int
	start int
}

func New(source string) *Cursor {
	return &Cursor{src: source}
}

func (c *Cursor) Source() string {
	return c.src
}

func (c *Cursor) Len() int {
	return len(c.src)
}

func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos moves the cursor, clamping to the bounds of the source.
func (c *Cursor) SetPos(pos int) {
	c.pos = clamp(pos, len(c.src))
}

// Start is the marker a caller sets at the beginning of the unit it is consuming.
func (c *Cursor) Start() int {
	return c.start
}

func (c *Cursor) SetStart(pos int) {
	c.start = clamp(pos, len(c.src))
}

func (c *Cursor) EOF() bool {
	return c.pos >= len(c.src)
}

// Peek returns the byte at the current position, or 0 at end of input.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt returns the byte offset bytes away from the current position, or 0
// when that lies outside the source.
func (c *Cursor) PeekAt(offset int) byte {
	i := c.pos + offset
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// Next returns the current byte and advances past it.
func (c *Cursor) Next() byte {
	if c.EOF() {
		return 0
	}
	ch := c.src[c.pos]
	c.pos++
	return ch
}

// Skip advances one byte without looking at it.
func (c *Cursor) Skip() {
	if !c.EOF() {
		c.pos++
	}
}

// Eat consumes ch if it is the current byte.
func (c *Cursor) Eat(ch byte) bool {
	if !c.EOF() && c.src[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

// EatFunc consumes the current byte if pred accepts it.
func (c *Cursor) EatFunc(pred func(byte) bool) bool {
	if !c.EOF() && pred(c.src[c.pos]) {
		c.pos++
		return true
	}
	return false
}

// EatWhile consumes bytes while pred accepts them and reports whether
// anything was consumed.
func (c *Cursor) EatWhile(pred func(byte) bool) bool {
	start := c.pos
	for c.EatFunc(pred) {
	}
	return c.pos != start
}

// EatWhileByte consumes a run of ch.
func (c *Cursor) EatWhileByte(ch byte) bool {
	start := c.pos
	for c.Eat(ch) {
	}
	return c.pos != start
}

// Substring returns the source between two offsets, clamped to the source.
func (c *Cursor) Substring(start, end int) string {
	start, end = clamp(start, len(c.src)), clamp(end, len(c.src))
	if end <= start {
		return ""
	}
	return c.src[start:end]
}

// Current returns the text between the start marker and the current position.
func (c *Cursor) Current() string {
	return c.Substring(c.start, c.pos)
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
