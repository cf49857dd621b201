package inlinestr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// A value serializes as exactly Capacity() bytes: the integer in big-endian
// order, so content comes first and the length byte last.

// AppendBinary implements encoding.BinaryAppender.
func (v Str[L]) AppendBinary(b []byte) ([]byte, error) {
	for j := 0; j < len(v.l); j++ {
		b = binary.BigEndian.AppendUint32(b, v.l[j])
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Str[L]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, int(v.Capacity())))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be
// exactly Capacity() bytes with a valid length byte and zero padding.
func (v *Str[L]) UnmarshalBinary(data []byte) error {
	var w Str[L]
	size := int(w.Capacity())
	switch {
	case len(data) < size:
		return fmt.Errorf("%w: %d of %d bytes", ErrBufferTooSmall, len(data), size)
	case len(data) > size:
		return fmt.Errorf("%w: %d bytes for %s", ErrMalformed, len(data), w.Capacity())
	}
	for j := 0; j < len(w.l); j++ {
		w.l[j] = binary.BigEndian.Uint32(data[4*j:])
	}
	if err := w.validate(); err != nil {
		return err
	}
	*v = w
	return nil
}

// validate checks the length byte and the zero padding.
func (v *Str[L]) validate() error {
	n := v.Len()
	if n > v.maxLen() {
		return tooLong(n, v.Capacity())
	}
	w := *v
	w.clearFrom(n)
	w.setLen(n)
	if w != *v {
		return fmt.Errorf("%w: non-zero padding after %d bytes", ErrMalformed, n)
	}
	return nil
}

// WriteTo writes the Capacity() bytes of v to w.
func (v Str[L]) WriteTo(w io.Writer) (int64, error) {
	var buf [256]byte
	b, _ := v.AppendBinary(buf[:0])
	n, err := w.Write(b)
	return int64(n), err
}

// ReadFrom reads exactly Capacity() bytes from r into v.
func (v *Str[L]) ReadFrom(r io.Reader) (int64, error) {
	var buf [256]byte
	size := int(v.Capacity())
	n, err := io.ReadFull(r, buf[:size])
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return int64(n), fmt.Errorf("%w: %v", ErrBufferTooSmall, err)
		}
		return int64(n), err
	}
	return int64(n), v.UnmarshalBinary(buf[:size])
}

// MarshalText implements encoding.TextMarshaler with the raw content.
func (v Str[L]) MarshalText() ([]byte, error) {
	return v.AppendTo(make([]byte, 0, v.Len())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Str[L]) UnmarshalText(text []byte) error {
	w, err := FromSpan[L](text, 0, len(text))
	if err != nil {
		return err
	}
	*v = w
	return nil
}

// MarshalBinary returns the single content byte.
func (c Str1) MarshalBinary() ([]byte, error) { return []byte{c.b}, nil }

// UnmarshalBinary reads exactly one byte.
func (c *Str1) UnmarshalBinary(data []byte) error {
	switch {
	case len(data) < 1:
		return fmt.Errorf("%w: 0 of 1 bytes", ErrBufferTooSmall)
	case len(data) > 1:
		return fmt.Errorf("%w: %d bytes for %s", ErrMalformed, len(data), Cap1)
	}
	c.b = data[0]
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Str1) MarshalText() ([]byte, error) { return []byte{c.b}, nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Str1) UnmarshalText(text []byte) error {
	w, err := NewStr1(string(text))
	if err != nil {
		return err
	}
	*c = w
	return nil
}
