// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"context"
	"io"
	"log"

	"github.com/go-lpc/afm"
	"golang.org/x/xerrors"
)

// Decoder reads ASD data from an underlying data source.
type Decoder struct {
	r  io.Reader
	ch afm.Channel

	// Msg logs the frames dropped because of truncated payloads.
	// A nil Msg discards these messages.
	Msg *log.Logger
}

// NewDecoder creates a decoder that reads frames of channel ch from r.
func NewDecoder(r io.Reader, ch afm.Channel) *Decoder {
	return &Decoder{r: r, ch: ch}
}

// Decode decodes the whole file into f.
func (dec *Decoder) Decode(f *File) error {
	return dec.DecodeContext(context.Background(), f)
}

// DecodeContext decodes the whole file into f.
//
// Header errors abort the decode.
// Frames with an incomplete payload are dropped without error:
// f.Decoded() is then smaller than f.Declared().
func (dec *Decoder) DecodeContext(ctx context.Context, f *File) error {
	msg := dec.Msg
	if msg == nil {
		msg = log.New(io.Discard, "", 0)
	}

	ch := dec.ch
	if ch == 0 {
		ch = afm.Channel1
	}
	if ch != afm.Channel1 && ch != afm.Channel2 {
		return xerrors.Errorf("asd: invalid channel %v", ch)
	}

	c := newCursor(dec.r)
	hdr, err := decodeHeader(c)
	if err != nil {
		return err
	}

	if ch == afm.Channel2 && hdr.DataTypeCh2 == 0 {
		return xerrors.Errorf("asd: %v not recorded: %w", ch, afm.ErrChannelNotFound)
	}

	f.Header = hdr
	f.Channel = ch
	f.Frames = nil

	if ch == afm.Channel2 {
		// channel-2 frames follow all the channel-1 frames.
		c.skip(int64(hdr.NumberFramesCurrent) * hdr.frameSize())
		if c.err != nil {
			msg.Printf("could not reach %v frames: %+v", ch, c.err)
			msg.Printf("decoded %d frames out of %d", 0, hdr.NumberFramesCurrent)
			return nil
		}
	}

	f.Frames, err = decodeFrames(ctx, c, &f.Header, msg)
	if err != nil {
		return err
	}

	return nil
}
