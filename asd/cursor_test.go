// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestCursor(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{
		0x01, 0x02, 0x03, 0x04, // i32
		0xfe, 0xff, // i16
		0x00, 0x00, 0x80, 0x3f, // f32
		0x01,       // bool
		0xaa, 0xbb, // skipped
		'h', 'e', 'l', 'l', 'o',
	}))

	if got, want := c.readI32(), int32(0x04030201); got != want {
		t.Fatalf("invalid i32: got=0x%x, want=0x%x", got, want)
	}
	if got, want := c.readI16(), int16(-2); got != want {
		t.Fatalf("invalid i16: got=%d, want=%d", got, want)
	}
	if got, want := c.readF32(), float32(1); got != want {
		t.Fatalf("invalid f32: got=%v, want=%v", got, want)
	}
	if got, want := c.readBool(), true; got != want {
		t.Fatalf("invalid bool: got=%v, want=%v", got, want)
	}
	c.skip(2)
	if got, want := c.readText(5), "hello"; got != want {
		t.Fatalf("invalid text: got=%q, want=%q", got, want)
	}
	if c.err != nil {
		t.Fatalf("unexpected error: %+v", c.err)
	}
	if got, want := c.pos, int64(18); got != want {
		t.Fatalf("invalid position: got=%d, want=%d", got, want)
	}

	if got := c.readI32(); got != 0 {
		t.Fatalf("invalid i32 at EOF: got=%d", got)
	}
	if !errors.Is(c.err, ErrTruncatedInput) {
		t.Fatalf("invalid error: %+v", c.err)
	}
	if !errors.Is(c.err, io.EOF) {
		t.Fatalf("invalid error: %+v", c.err)
	}
}

func TestCursorTruncated(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  []byte
		read func(c *cursor)
		want error
	}{
		{
			name: "i32-eof",
			raw:  nil,
			read: func(c *cursor) { c.readI32() },
			want: io.EOF,
		},
		{
			name: "i32-short",
			raw:  []byte{1, 2},
			read: func(c *cursor) { c.readI32() },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "i16-short",
			raw:  []byte{1},
			read: func(c *cursor) { c.readI16() },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "f32-short",
			raw:  []byte{1, 2, 3},
			read: func(c *cursor) { c.readF32() },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "bool-eof",
			raw:  nil,
			read: func(c *cursor) { c.readBool() },
			want: io.EOF,
		},
		{
			name: "skip-short",
			raw:  []byte{1, 2, 3},
			read: func(c *cursor) { c.skip(12) },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "skip-eof",
			raw:  nil,
			read: func(c *cursor) { c.skip(12) },
			want: io.EOF,
		},
		{
			name: "text-short",
			raw:  []byte("abc"),
			read: func(c *cursor) { c.readText(4) },
			want: io.ErrUnexpectedEOF,
		},
		{
			name: "text-eof",
			raw:  nil,
			read: func(c *cursor) { c.readText(4) },
			want: io.EOF,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newCursor(bytes.NewReader(tc.raw))
			tc.read(c)
			if !errors.Is(c.err, ErrTruncatedInput) {
				t.Fatalf("invalid error: got=%+v, want=%v", c.err, ErrTruncatedInput)
			}
			if !errors.Is(c.err, tc.want) {
				t.Fatalf("invalid error: got=%+v, want=%v", c.err, tc.want)
			}
		})
	}
}

func TestCursorSticky(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{1, 2}))
	c.readI32()
	if c.err == nil {
		t.Fatalf("expected an error")
	}
	err := c.err

	c.skip(1)
	c.readI16()
	c.readText(1)
	if c.err != err {
		t.Fatalf("error is not sticky: got=%+v, want=%+v", c.err, err)
	}
}

func TestCursorText(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "ascii",
			raw:  []byte("operator"),
			want: "operator",
		},
		{
			name: "utf8",
			raw:  []byte("µm scan"),
			want: "µm scan",
		},
		{
			name: "invalid-byte",
			raw:  []byte{'a', 0xff, 'b'},
			want: "a�b",
		},
		{
			name: "truncated-sequence",
			raw:  []byte{'a', 0xe2, 0x82},
			want: "a�",
		},
		{
			name: "empty",
			raw:  nil,
			want: "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newCursor(bytes.NewReader(tc.raw))
			got := c.readText(len(tc.raw))
			if c.err != nil {
				t.Fatalf("could not read text: %+v", c.err)
			}
			if got != tc.want {
				t.Fatalf("invalid text: got=%q, want=%q", got, tc.want)
			}
		})
	}
}

func TestCursorSamples(t *testing.T) {
	c := newCursor(bytes.NewReader([]byte{
		0x01, 0x00,
		0xff, 0xff,
		0x00, 0x80,
		0x07, // incomplete sample
	}))

	got, err := c.readSamples(4)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("invalid error: %+v", err)
	}
	if want := []int16{1, -1, -32768}; !reflect.DeepEqual(got, want) {
		t.Fatalf("invalid samples: got=%v, want=%v", got, want)
	}
}

func TestCursorSamplesChunks(t *testing.T) {
	const n = 3*sampleChunk/2 + 5 // spans several read windows
	raw := make([]byte, 2*n)
	want := make([]int16, n)
	for i := range want {
		want[i] = int16(i - n/2)
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(want[i]))
	}

	c := newCursor(bytes.NewReader(raw))
	got, err := c.readSamples(n)
	if err != nil {
		t.Fatalf("could not read samples: %+v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("invalid samples")
	}
	if got, want := cap(got), n; got != want {
		t.Fatalf("invalid samples capacity: got=%d, want=%d", got, want)
	}
	if got, want := c.pos, int64(2*n); got != want {
		t.Fatalf("invalid position: got=%d, want=%d", got, want)
	}

	// a short payload only costs what the input holds.
	c = newCursor(bytes.NewReader(raw[:sampleChunk+3]))
	got, err = c.readSamples(1 << 26)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("invalid error: %+v", err)
	}
	if got, want := len(got), sampleChunk/2+1; got != want {
		t.Fatalf("invalid number of samples: got=%d, want=%d", got, want)
	}
	if got := cap(c.buf); got > 2*sampleChunk {
		t.Fatalf("read buffer grew past the read window: %d", got)
	}
}
