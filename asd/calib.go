// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"github.com/go-lpc/afm"
	"github.com/go-lpc/afm/grid"
	"gonum.org/v1/gonum/mat"
)

// CalibrationDivisor converts raw ADC deflection units into
// extension-coefficient units.
const CalibrationDivisor = 205.0

// ZCoef returns the height extension coefficient of channel ch.
// Both ASD channels share the Z extension coefficient.
func (hdr *Header) ZCoef(ch afm.Channel) float64 {
	return float64(hdr.ZExtCoef)
}

// Calibrate converts the raw samples of fr into heights, in nm:
//
//	h = -raw / 205 * coef
//
// The returned matrix has YPixel rows and XPixel columns, in scan order.
func (hdr *Header) Calibrate(fr Frame, coef float64) *mat.Dense {
	data := make([]float64, len(fr.Data))
	for i, v := range fr.Data {
		data[i] = -float64(v) / CalibrationDivisor
	}
	return grid.Scale(coef, mat.NewDense(int(hdr.YPixel), int(hdr.XPixel), data))
}

// Normalize brings a calibrated frame into the canonical orientation:
// it is flipped vertically, then optionally rotated by a clockwise
// quarter-turn and finally circularly shifted by opts.Shift columns.
func Normalize(m mat.Matrix, opts afm.Options) *mat.Dense {
	o := grid.FlipUD(m)
	if opts.Rotate {
		o = grid.Rotate90(o)
	}
	if opts.Shift != 0 {
		o = grid.WrapShift(o, opts.Shift)
	}
	return o
}

// Calibrated returns the calibrated and normalized frames of f.
func (f *File) Calibrated(opts afm.Options) []*mat.Dense {
	var (
		coef = f.Header.ZCoef(f.Channel)
		out  = make([]*mat.Dense, len(f.Frames))
	)
	for i, fr := range f.Frames {
		out[i] = Normalize(f.Header.Calibrate(fr, coef), opts)
	}
	return out
}
