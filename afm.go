// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package afm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrChannelNotFound is returned when the requested channel is not
	// recorded in the decoded file.
	ErrChannelNotFound = errors.New("afm: channel not found")

	// ErrUnknownFormat is returned when no decoder is registered for
	// a file extension.
	ErrUnknownFormat = errors.New("afm: unknown format")
)

// Channel selects one of the (up to) two measurement streams multiplexed
// into a capture file.
type Channel int

const (
	Channel1 Channel = 1 // first channel (usually topography)
	Channel2 Channel = 2 // second channel (error, phase, ...)
)

func (ch Channel) String() string {
	switch ch {
	case Channel1:
		return "ch1"
	case Channel2:
		return "ch2"
	default:
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
}

// Options configures a decode.
// The zero value decodes Channel1 without rotation nor shift.
type Options struct {
	Channel Channel // channel to decode. 0 means Channel1.
	Rotate  bool    // rotate frames by a clockwise quarter-turn.
	Shift   int     // circular column shift, in pixels.
}

// Chan returns the channel selected by the options.
func (o Options) Chan() Channel {
	if o.Channel == 0 {
		return Channel1
	}
	return o.Channel
}

// Image is the decoded content of a capture file.
type Image struct {
	Frames   []*mat.Dense // calibrated height maps, in nm, in acquisition order.
	Metadata Metadata
}

// Format decodes one kind of capture file.
//
// Decode must consume r sequentially, must not retain r nor the returned
// Image after it returns, and must be safe to call concurrently on
// different inputs.
type Format interface {
	Name() string
	Decode(ctx context.Context, r io.Reader, opts Options) (*Image, error)
}
