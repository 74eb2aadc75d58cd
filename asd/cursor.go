// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// cursor reads little-endian values sequentially from an underlying
// reader. The first error is sticky: subsequent reads are no-ops returning
// zero values.
type cursor struct {
	r   io.Reader
	pos int64 // number of bytes consumed so far
	buf []byte
	err error
	txt *encoding.Decoder
}

func newCursor(r io.Reader) *cursor {
	return &cursor{
		r:   r,
		buf: make([]byte, 8),
		txt: unicode.UTF8.NewDecoder(),
	}
}

// truncError reports an input exhausted at byte pos.
type truncError struct {
	pos int64
	err error
}

func (e *truncError) Error() string {
	return fmt.Sprintf("truncated input at byte %d: %v", e.pos, e.err)
}

func (e *truncError) Is(target error) bool { return target == ErrTruncatedInput }
func (e *truncError) Unwrap() error        { return e.err }

func (c *cursor) fail(err error) {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		c.err = &truncError{pos: c.pos, err: err}
	default:
		c.err = err
	}
}

func (c *cursor) grow(n int) {
	if cap(c.buf) < n {
		c.buf = append(c.buf[:cap(c.buf)], make([]byte, n-cap(c.buf))...)
	}
	c.buf = c.buf[:n]
}

func (c *cursor) load(n int) bool {
	if c.err != nil {
		return false
	}
	c.grow(n)
	nn, err := io.ReadFull(c.r, c.buf[:n])
	c.pos += int64(nn)
	if err != nil {
		c.fail(err)
		return false
	}
	return true
}

func (c *cursor) readI32() int32 {
	if !c.load(4) {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(c.buf[:4]))
}

func (c *cursor) readI16() int16 {
	if !c.load(2) {
		return 0
	}
	return int16(binary.LittleEndian.Uint16(c.buf[:2]))
}

func (c *cursor) readF32() float32 {
	if !c.load(4) {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(c.buf[:4]))
}

func (c *cursor) readBool() bool {
	if !c.load(1) {
		return false
	}
	return c.buf[0] != 0
}

// readText reads exactly n bytes and decodes them as UTF-8.
// Ill-formed sequences are replaced with U+FFFD.
func (c *cursor) readText(n int) string {
	if c.err != nil || n <= 0 {
		return ""
	}

	// text sizes are not validated: only allocate what the input holds.
	raw, err := io.ReadAll(io.LimitReader(c.r, int64(n)))
	c.pos += int64(len(raw))
	switch {
	case err != nil:
		c.fail(err)
		return ""
	case len(raw) == 0:
		c.fail(io.EOF)
		return ""
	case len(raw) < n:
		c.fail(io.ErrUnexpectedEOF)
		return ""
	}

	c.txt.Reset()
	out, err := c.txt.Bytes(raw)
	if err != nil {
		// the UTF-8 decoder replaces ill-formed input and does not fail.
		return string(raw)
	}
	return string(out)
}

// skip discards the next n bytes.
func (c *cursor) skip(n int64) {
	if c.err != nil || n <= 0 {
		return
	}
	nn, err := io.CopyN(io.Discard, c.r, n)
	c.pos += nn
	if err != nil {
		if errors.Is(err, io.EOF) && nn > 0 {
			err = io.ErrUnexpectedEOF
		}
		c.fail(err)
	}
}

// sampleChunk is the largest number of payload bytes read at once.
// Frame payloads are accumulated chunk by chunk so that a header declaring
// a huge frame only costs what the input actually holds.
const sampleChunk = 64 << 10

// readSamples reads up to n int16 samples and returns the complete samples
// read. A short read is reported through the returned error and is sticky.
func (c *cursor) readSamples(n int) ([]int16, error) {
	if c.err != nil {
		return nil, c.err
	}

	var out []int16
	for len(out) < n {
		sz := 2 * (n - len(out))
		if sz > sampleChunk {
			sz = sampleChunk
		}
		c.grow(sz)
		nn, err := io.ReadFull(c.r, c.buf[:sz])
		c.pos += int64(nn)

		for i := 0; i+1 < nn; i += 2 {
			out = append(out, int16(binary.LittleEndian.Uint16(c.buf[i:])))
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(out) > 0 {
				err = io.ErrUnexpectedEOF
			}
			c.fail(err)
			return out, c.err
		}
	}

	if cap(out) > n {
		out = append(make([]int16, 0, n), out...)
	}
	return out, nil
}
