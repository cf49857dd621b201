package inlinestr

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBinary(t *testing.T) {
	v := MustNew[[2]uint32]("hi")
	b, err := v.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 'i', 0, 0, 0, 0, 0, 2}, b)

	var w Str8
	require.NoError(t, w.UnmarshalBinary(b))
	assert.Equal(t, v, w)

	prefixed, err := v.AppendBinary([]byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xAA}, b...), prefixed)
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "short", data: []byte{'h', 'i', 0, 2}, wantErr: ErrBufferTooSmall},
		{name: "long", data: make([]byte, 9), wantErr: ErrMalformed},
		{name: "length past capacity", data: []byte{0, 0, 0, 0, 0, 0, 0, 8}, wantErr: ErrInputTooLong},
		{name: "dirty padding", data: []byte{'h', 'i', 'x', 0, 0, 0, 0, 2}, wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MustNew[[2]uint32]("keep")
			err := w.UnmarshalBinary(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "keep", w.String(), "failed decode leaves the target untouched")
		})
	}
}

func TestWriteToReadFrom(t *testing.T) {
	var buf bytes.Buffer
	values := []Str16{MustNew[[4]uint32]("one"), MustNew[[4]uint32](""), MustNew[[4]uint32]("fifteen bytes!!")}
	for _, v := range values {
		n, err := v.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(16), n)
	}
	assert.Equal(t, 48, buf.Len())

	for _, want := range values {
		var got Str16
		n, err := got.ReadFrom(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(16), n)
		assert.Equal(t, want, got)
	}

	var v Str16
	_, err := v.ReadFrom(strings.NewReader("short"))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestTextAndJSON(t *testing.T) {
	type row struct {
		Name Str16 `json:"name"`
		Tag  Str1  `json:"tag"`
	}

	in := row{Name: MustNew[[4]uint32]("café"), Tag: Str1Of('x')}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"café","tag":"x"}`, string(b))

	var out row
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"name":"sixteen bytes!!!"}`), &out)
	assert.ErrorIs(t, err, ErrInputTooLong)
	err = json.Unmarshal([]byte(`{"tag":"xy"}`), &out)
	assert.ErrorIs(t, err, ErrInputTooLong)
}

func TestStr1Binary(t *testing.T) {
	b, err := Str1Of('z').MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{'z'}, b)

	var c Str1
	require.NoError(t, c.UnmarshalBinary(b))
	assert.Equal(t, Str1Of('z'), c)

	assert.ErrorIs(t, c.UnmarshalBinary(nil), ErrBufferTooSmall)
	assert.ErrorIs(t, c.UnmarshalBinary([]byte("zz")), ErrMalformed)
}
