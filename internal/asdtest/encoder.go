// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asdtest writes synthetic ASD files.
package asdtest // import "github.com/go-lpc/afm/internal/asdtest"

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-lpc/afm/asd"
)

// Encoder writes ASD data to an output stream.
// Text sizes are taken from the lengths of the header text fields.
// Declared header and sub-header sizes larger than the encoded fields are
// zero-padded.
type Encoder struct {
	w   io.Writer
	n   int64 // bytes written so far
	buf []byte
	err error
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		buf: make([]byte, 8),
	}
}

// Encode writes the header of f, followed by its frames.
func (enc *Encoder) Encode(f *asd.File) error {
	if f == nil {
		return nil
	}

	err := enc.EncodeHeader(&f.Header)
	if err != nil {
		return err
	}

	for i, fr := range f.Frames {
		err = enc.EncodeFrame(&f.Header, fr)
		if err != nil {
			return fmt.Errorf("asdtest: could not write frame %d: %w", i, err)
		}
	}
	return nil
}

// EncodeHeader writes the file header, text fields and padding included.
func (enc *Encoder) EncodeHeader(hdr *asd.Header) error {
	enc.writeI32(hdr.FileVersion)
	enc.writeI32(hdr.FileHeaderSize)
	enc.writeI32(hdr.FrameHeaderSize)
	enc.writeI32(hdr.EncNumber)
	enc.writeI32(int32(len(hdr.OperatorName)))
	enc.writeI32(int32(len(hdr.Comment)))
	enc.writeI32(hdr.DataTypeCh1)
	enc.writeI32(hdr.DataTypeCh2)
	enc.writeI32(hdr.NumberFramesRecorded)
	enc.writeI32(hdr.NumberFramesCurrent)
	enc.writeI32(hdr.ScanDirection)
	enc.writeI32(hdr.FileName)
	enc.writeI32(hdr.XPixel)
	enc.writeI32(hdr.YPixel)
	enc.writeI32(hdr.XScanRange)
	enc.writeI32(hdr.YScanRange)
	enc.writeBool(hdr.AvgFlag)
	enc.writeI32(hdr.AvgNumber)

	enc.writeI32(hdr.Year)
	enc.writeI32(hdr.Month)
	enc.writeI32(hdr.Day)
	enc.writeI32(hdr.Hour)
	enc.writeI32(hdr.Minute)
	enc.writeI32(hdr.Second)

	enc.writeI32(hdr.XRoundDeg)
	enc.writeI32(hdr.YRoundDeg)
	enc.writeF32(hdr.FrameAcqTime)
	enc.writeF32(hdr.SensorSens)
	enc.writeF32(hdr.PhaseSens)
	enc.pad(12)

	enc.writeI32(hdr.MachineNum)
	enc.writeI32(hdr.ADRange)
	enc.writeI32(hdr.ADRes)
	enc.writeF32(hdr.XMaxScanRange)
	enc.writeF32(hdr.YMaxScanRange)
	enc.writeF32(hdr.XExtCoef)
	enc.writeF32(hdr.YExtCoef)
	enc.writeF32(hdr.ZExtCoef)
	enc.writeF32(hdr.ZDriveGain)

	enc.write([]byte(hdr.OperatorName))
	enc.write([]byte(hdr.Comment))

	if sz := int64(hdr.FileHeaderSize); sz > enc.n {
		enc.pad(sz - enc.n)
	}

	return enc.err
}

// EncodeFrame writes a frame sub-header, its padding and its samples.
func (enc *Encoder) EncodeFrame(hdr *asd.Header, fr asd.Frame) error {
	fh := fr.Header
	enc.writeI32(fh.Number)
	enc.writeI16(fh.MaxData)
	enc.writeI16(fh.MinData)
	enc.writeI16(fh.XOffset)
	enc.writeI16(fh.DataType)
	enc.writeF32(fh.XTilt)
	enc.writeF32(fh.YTilt)
	enc.writeBool(fh.LaserIR)
	enc.pad(int64(hdr.FrameHeaderSize) - asd.FrameHeaderKnownSize)

	for _, v := range fr.Data {
		enc.writeI16(v)
	}
	return enc.err
}

func (enc *Encoder) write(p []byte) {
	if enc.err != nil {
		return
	}
	var n int
	n, enc.err = enc.w.Write(p)
	enc.n += int64(n)
}

func (enc *Encoder) pad(n int64) {
	if n <= 0 || enc.err != nil {
		return
	}
	var nn int64
	nn, enc.err = io.CopyN(enc.w, bytes.NewReader(make([]byte, n)), n)
	enc.n += nn
}

func (enc *Encoder) writeBool(v bool) {
	const n = 1
	enc.reserve(n)
	enc.buf[0] = 0
	if v {
		enc.buf[0] = 1
	}
	enc.write(enc.buf[:n])
}

func (enc *Encoder) writeI16(v int16) {
	const n = 2
	enc.reserve(n)
	binary.LittleEndian.PutUint16(enc.buf[:n], uint16(v))
	enc.write(enc.buf[:n])
}

func (enc *Encoder) writeI32(v int32) {
	const n = 4
	enc.reserve(n)
	binary.LittleEndian.PutUint32(enc.buf[:n], uint32(v))
	enc.write(enc.buf[:n])
}

func (enc *Encoder) writeF32(v float32) {
	const n = 4
	enc.reserve(n)
	binary.LittleEndian.PutUint32(enc.buf[:n], math.Float32bits(v))
	enc.write(enc.buf[:n])
}

func (enc *Encoder) reserve(n int) {
	if cap(enc.buf) < n {
		enc.buf = append(enc.buf[:len(enc.buf)], make([]byte, n-cap(enc.buf))...)
	}
}
