package inlinestr

// Status is the outcome of decoding one token into a fixed capacity. The
// parser boundary reports overflow as a status so that bulk ingestion can
// escalate to a wider type instead of unwinding an error.
type Status uint8

const (
	StatusOK Status = iota
	// StatusOverflow means the content does not fit; retry wider.
	StatusOverflow
	// StatusShortBuffer means the span runs past the source buffer.
	StatusShortBuffer
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusOverflow:
		return "OVERFLOW"
	case StatusShortBuffer:
		return "SHORT_BUFFER"
	}
	return "UNKNOWN"
}

// DecodeSpan decodes the token buf[off:off+n] into capacity L.
func DecodeSpan[L Lanes](buf []byte, off, n int) (Str[L], Status) {
	return fromSpan[L](buf, off, n)
}

// ByteCursor yields the code units of one token, for example after escape
// processing. Peek reports false at the end of the token.
type ByteCursor interface {
	Peek() (byte, bool)
	Advance()
}

// DecodeCursor decodes the remaining bytes of c into capacity L.
func DecodeCursor[L Lanes](c ByteCursor) (Str[L], Status) {
	var v Str[L]
	return DecodeCursorInto(v, c)
}

// DecodeCursorInto appends the remaining bytes of c to v. On overflow it
// returns the full value and leaves the byte that did not fit unconsumed,
// so the caller can Widen the result and continue from the same cursor.
func DecodeCursorInto[L Lanes](v Str[L], c ByteCursor) (Str[L], Status) {
	for {
		b, ok := c.Peek()
		if !ok {
			return v, StatusOK
		}
		next, overflowed := v.AppendByte(b)
		if overflowed {
			return v, StatusOverflow
		}
		v = next
		c.Advance()
	}
}

// QuotedCursor walks a double-quoted token, unescaping \n, \r, \t, \\ and
// \". Any other escaped byte stands for itself.
type QuotedCursor struct {
	src []byte
	pos int
}

// NewQuotedCursor starts a cursor on the opening quote at src[off].
func NewQuotedCursor(src []byte, off int) *QuotedCursor {
	c := &QuotedCursor{src: src, pos: off}
	if c.pos < len(src) && src[c.pos] == '"' {
		c.pos++
	}
	return c
}

// Peek returns the current unescaped byte.
func (c *QuotedCursor) Peek() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	switch ch := c.src[c.pos]; ch {
	case '"':
		return 0, false
	case '\\':
		if c.pos+1 >= len(c.src) {
			return 0, false
		}
		return unescape(c.src[c.pos+1]), true
	default:
		return ch, true
	}
}

// Advance moves past the current byte or escape pair.
func (c *QuotedCursor) Advance() {
	if c.pos >= len(c.src) {
		return
	}
	if c.src[c.pos] == '\\' {
		c.pos += 2
		return
	}
	c.pos++
}

// Terminated reports whether the cursor stopped on the closing quote.
func (c *QuotedCursor) Terminated() bool {
	return c.pos < len(c.src) && c.src[c.pos] == '"'
}

// Offset returns the cursor position in the source.
func (c *QuotedCursor) Offset() int { return c.pos }

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return ch
}
