// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"context"
	"log"

	"golang.org/x/xerrors"
)

// decodeFrameHeader decodes a frame sub-header and skips its padding.
func decodeFrameHeader(c *cursor, size int32) FrameHeader {
	var fh FrameHeader
	fh.Number = c.readI32()
	fh.MaxData = c.readI16()
	fh.MinData = c.readI16()
	fh.XOffset = c.readI16()
	fh.DataType = c.readI16()
	fh.XTilt = c.readF32()
	fh.YTilt = c.readF32()
	fh.LaserIR = c.readBool()
	c.skip(int64(size) - FrameHeaderKnownSize)
	return fh
}

// decodeFrames decodes up to hdr.NumberFramesCurrent frames.
//
// A frame whose sub-header or payload is incomplete is dropped and ends
// the iteration: the frames decoded so far are returned without error.
// ctx is checked between frames.
func decodeFrames(ctx context.Context, c *cursor, hdr *Header, msg *log.Logger) ([]Frame, error) {
	var (
		n      = hdr.npix()
		nfr    = int(hdr.NumberFramesCurrent)
		frames []Frame
	)

	for k := 0; k < nfr; k++ {
		fh := decodeFrameHeader(c, hdr.FrameHeaderSize)
		if c.err != nil {
			msg.Printf("frame %d: skipping incomplete frame header: %+v", k, c.err)
			break
		}

		data, err := c.readSamples(n)
		if len(data) != n {
			msg.Printf("frame %d: skipping incomplete frame. expected %d, got %d (err=%v)", k, n, len(data), err)
			break
		}

		frames = append(frames, Frame{Header: fh, Data: data})

		if err := ctx.Err(); err != nil {
			return frames, xerrors.Errorf("asd: frame decoding interrupted after frame %d: %w", k, err)
		}
	}

	if len(frames) < nfr {
		msg.Printf("decoded %d frames out of %d", len(frames), nfr)
	}

	return frames, nil
}
