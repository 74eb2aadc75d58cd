// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asd decodes ASD files, the multi-frame capture container written
// by high-speed atomic force microscopes.
//
// An ASD file is little-endian throughout.
// It starts with a fixed-layout file header followed by two free-text
// fields (operator name and comment), then by a table of frames.
// Each frame is made of a sub-header and of XPixel*YPixel signed 16-bit
// samples.
package asd // import "github.com/go-lpc/afm/asd"

import (
	"errors"

	"github.com/go-lpc/afm"
)

// Ext is the file extension of ASD files.
const Ext = ".asd"

const (
	// FixedHeaderSize is the size in bytes of the fixed part of the file
	// header, text fields excluded.
	FixedHeaderSize = 161

	// FrameHeaderKnownSize is the size in bytes of the decoded part of
	// a frame sub-header. Any remaining sub-header bytes are padding.
	FrameHeaderKnownSize = 21

	// MaxPixels is the largest number of pixels per frame accepted.
	MaxPixels = 1 << 26

	reservedSize = 12 // reserved bytes after PhaseSens
)

var (
	// ErrTruncatedInput is returned when the input ends before a
	// fixed-width header field could be read.
	ErrTruncatedInput = errors.New("asd: truncated input")

	// ErrInvalidHeader is returned when the file header holds
	// structurally implausible values.
	ErrInvalidHeader = errors.New("asd: invalid header")
)

// Header is the ASD file header.
// Fields are listed in wire order.
type Header struct {
	FileVersion          int32
	FileHeaderSize       int32 // total size of the file header, text fields included
	FrameHeaderSize      int32 // total size of a frame sub-header, padding included
	EncNumber            int32 // number of encoder channels
	OperationNameSize    int32
	CommentSize          int32
	DataTypeCh1          int32 // data type code of channel 1
	DataTypeCh2          int32 // data type code of channel 2. 0 if not recorded.
	NumberFramesRecorded int32
	NumberFramesCurrent  int32 // number of frames (per channel) stored in the file
	ScanDirection        int32
	FileName             int32
	XPixel               int32
	YPixel               int32
	XScanRange           int32 // nm
	YScanRange           int32 // nm
	AvgFlag              bool
	AvgNumber            int32

	Year   int32
	Month  int32
	Day    int32
	Hour   int32
	Minute int32
	Second int32

	XRoundDeg    int32
	YRoundDeg    int32
	FrameAcqTime float32 // ms
	SensorSens   float32
	PhaseSens    float32

	// 12 reserved bytes.

	MachineNum    int32
	ADRange       int32
	ADRes         int32
	XMaxScanRange float32
	YMaxScanRange float32
	XExtCoef      float32
	YExtCoef      float32
	ZExtCoef      float32
	ZDriveGain    float32

	OperatorName string
	Comment      string
}

// FrameHeader is the decoded part of a frame sub-header.
type FrameHeader struct {
	Number   int32
	MaxData  int16
	MinData  int16
	XOffset  int16
	DataType int16
	XTilt    float32
	YTilt    float32
	LaserIR  bool
}

// Frame is a frame as stored on disk.
type Frame struct {
	Header FrameHeader
	Data   []int16 // YPixel rows of XPixel samples, in scan order.
}

// File is a decoded ASD file.
type File struct {
	Header  Header
	Channel afm.Channel
	Frames  []Frame // valid frames of the selected channel, in on-disk order.
}

// Declared returns the number of frames the file header declares.
func (f *File) Declared() int {
	return int(f.Header.NumberFramesCurrent)
}

// Decoded returns the number of frames successfully decoded.
func (f *File) Decoded() int {
	return len(f.Frames)
}

// Truncated reports whether trailing frames were dropped because their
// payload was incomplete.
func (f *File) Truncated() bool {
	return f.Decoded() < f.Declared()
}
