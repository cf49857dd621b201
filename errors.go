package inlinestr

import "errors"

var (
	// ErrInputTooLong is returned when content does not fit the target capacity.
	ErrInputTooLong = errors.New("inlinestr: input too long for capacity")
	// ErrBufferTooSmall is returned when fewer source bytes are available than requested.
	ErrBufferTooSmall = errors.New("inlinestr: buffer too small")
	// ErrNullSource is returned for a nil source pointer.
	ErrNullSource = errors.New("inlinestr: nil source pointer")
	// ErrBounds reports a code-unit index outside the occupied content.
	ErrBounds = errors.New("inlinestr: index out of bounds")
	// ErrTypeMismatch is returned when a sort or block reader is given the wrong element type.
	ErrTypeMismatch = errors.New("inlinestr: element type mismatch")
	// ErrScratchAliased is returned when a sort scratch buffer overlaps the data.
	ErrScratchAliased = errors.New("inlinestr: scratch buffer overlaps data")
	// ErrMalformed is returned when serialized bytes break the encoding layout.
	ErrMalformed = errors.New("inlinestr: malformed encoding")
)
