// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid holds the geometric transforms applied to calibrated
// height maps to bring them into the canonical on-screen orientation.
//
// All functions return a new matrix and leave their input untouched.
package grid // import "github.com/go-lpc/afm/grid"

import (
	"gonum.org/v1/gonum/mat"
)

// Scale returns a new matrix with every element of m multiplied by f.
func Scale(f float64, m mat.Matrix) *mat.Dense {
	var o mat.Dense
	o.Scale(f, m)
	return &o
}

// FlipUD returns m with its row order reversed.
func FlipUD(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := o.RawRowView(r - 1 - i)
		for j := range row {
			row[j] = m.At(i, j)
		}
	}
	return o
}

// Rotate90 returns m rotated by a clockwise quarter-turn.
// A r×c matrix yields a c×r matrix.
func Rotate90(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(c, r, nil)
	for i := 0; i < c; i++ {
		row := o.RawRowView(i)
		for j := range row {
			row[j] = m.At(r-1-j, i)
		}
	}
	return o
}

// WrapShift returns m with its columns circularly shifted by n pixels:
// column j of m ends up in column (j+n) mod width.
// Negative values shift to the left.
func WrapShift(m mat.Matrix, n int) *mat.Dense {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	n %= c
	if n < 0 {
		n += c
	}
	for i := 0; i < r; i++ {
		row := o.RawRowView(i)
		for j := 0; j < c; j++ {
			row[(j+n)%c] = m.At(i, j)
		}
	}
	return o
}
