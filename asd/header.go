// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"golang.org/x/xerrors"
)

// decodeHeader decodes the file header, text fields included, and leaves
// the cursor at the start of the frame table.
func decodeHeader(c *cursor) (Header, error) {
	var hdr Header

	hdr.FileVersion = c.readI32()
	hdr.FileHeaderSize = c.readI32()
	hdr.FrameHeaderSize = c.readI32()
	hdr.EncNumber = c.readI32()
	hdr.OperationNameSize = c.readI32()
	hdr.CommentSize = c.readI32()
	hdr.DataTypeCh1 = c.readI32()
	hdr.DataTypeCh2 = c.readI32()
	hdr.NumberFramesRecorded = c.readI32()
	hdr.NumberFramesCurrent = c.readI32()
	hdr.ScanDirection = c.readI32()
	hdr.FileName = c.readI32()
	hdr.XPixel = c.readI32()
	hdr.YPixel = c.readI32()
	hdr.XScanRange = c.readI32()
	hdr.YScanRange = c.readI32()
	hdr.AvgFlag = c.readBool()
	hdr.AvgNumber = c.readI32()

	hdr.Year = c.readI32()
	hdr.Month = c.readI32()
	hdr.Day = c.readI32()
	hdr.Hour = c.readI32()
	hdr.Minute = c.readI32()
	hdr.Second = c.readI32()

	hdr.XRoundDeg = c.readI32()
	hdr.YRoundDeg = c.readI32()
	hdr.FrameAcqTime = c.readF32()
	hdr.SensorSens = c.readF32()
	hdr.PhaseSens = c.readF32()
	c.skip(reservedSize)

	hdr.MachineNum = c.readI32()
	hdr.ADRange = c.readI32()
	hdr.ADRes = c.readI32()
	hdr.XMaxScanRange = c.readF32()
	hdr.YMaxScanRange = c.readF32()
	hdr.XExtCoef = c.readF32()
	hdr.YExtCoef = c.readF32()
	hdr.ZExtCoef = c.readF32()
	hdr.ZDriveGain = c.readF32()

	if c.err != nil {
		return Header{}, xerrors.Errorf("asd: could not read file header: %w", c.err)
	}

	err := hdr.validate()
	if err != nil {
		return Header{}, err
	}

	hdr.OperatorName = c.readText(int(hdr.OperationNameSize))
	if c.err != nil {
		return Header{}, xerrors.Errorf("asd: could not read operator name: %w", c.err)
	}

	hdr.Comment = c.readText(int(hdr.CommentSize))
	if c.err != nil {
		return Header{}, xerrors.Errorf("asd: could not read comment: %w", c.err)
	}

	if hdr.FileHeaderSize > 0 {
		declared := int64(hdr.FileHeaderSize)
		if c.pos > declared {
			return Header{}, xerrors.Errorf(
				"asd: file header overruns its declared size (size=%d, read=%d, version=%d): %w",
				declared, c.pos, hdr.FileVersion, ErrInvalidHeader,
			)
		}
		c.skip(declared - c.pos)
		if c.err != nil {
			return Header{}, xerrors.Errorf("asd: could not skip file header padding: %w", c.err)
		}
	}

	return hdr, nil
}

func (hdr *Header) validate() error {
	switch {
	case hdr.XPixel <= 0 || hdr.YPixel <= 0:
		return xerrors.Errorf(
			"asd: invalid pixel dimensions (x=%d, y=%d): %w",
			hdr.XPixel, hdr.YPixel, ErrInvalidHeader,
		)
	case int64(hdr.XPixel)*int64(hdr.YPixel) > MaxPixels:
		return xerrors.Errorf(
			"asd: too many pixels per frame (x=%d, y=%d): %w",
			hdr.XPixel, hdr.YPixel, ErrInvalidHeader,
		)
	case hdr.NumberFramesCurrent <= 0:
		return xerrors.Errorf(
			"asd: invalid number of frames (%d): %w",
			hdr.NumberFramesCurrent, ErrInvalidHeader,
		)
	case hdr.FrameHeaderSize < FrameHeaderKnownSize:
		return xerrors.Errorf(
			"asd: invalid frame header size (%d): %w",
			hdr.FrameHeaderSize, ErrInvalidHeader,
		)
	case hdr.FileHeaderSize < 0:
		return xerrors.Errorf(
			"asd: invalid file header size (%d): %w",
			hdr.FileHeaderSize, ErrInvalidHeader,
		)
	case hdr.OperationNameSize < 0 || hdr.CommentSize < 0:
		return xerrors.Errorf(
			"asd: invalid text field sizes (operator=%d, comment=%d): %w",
			hdr.OperationNameSize, hdr.CommentSize, ErrInvalidHeader,
		)
	}
	return nil
}

// npix returns the number of samples in a frame.
func (hdr *Header) npix() int {
	return int(hdr.XPixel) * int(hdr.YPixel)
}

// frameSize returns the on-disk size of a frame, sub-header included.
func (hdr *Header) frameSize() int64 {
	return int64(hdr.FrameHeaderSize) + 2*int64(hdr.npix())
}
