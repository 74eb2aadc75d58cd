// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asdtest

import (
	"bytes"

	"github.com/go-lpc/afm/asd"
)

// NewFile returns a file holding nfr frames of x*y pixels.
// Sample i of frame k holds 100*k + i.
func NewFile(x, y, nfr int) *asd.File {
	const (
		oper    = "operator"
		comment = "synthetic file"
	)
	f := &asd.File{
		Header: asd.Header{
			FileVersion:          1,
			FrameHeaderSize:      32,
			EncNumber:            1,
			OperationNameSize:    int32(len(oper)),
			CommentSize:          int32(len(comment)),
			DataTypeCh1:          0x5054, // "TP"
			NumberFramesRecorded: int32(nfr),
			NumberFramesCurrent:  int32(nfr),
			XPixel:               int32(x),
			YPixel:               int32(y),
			XScanRange:           int32(10 * x),
			YScanRange:           int32(5 * y),
			Year:                 2018,
			Month:                7,
			Day:                  9,
			Hour:                 20,
			Minute:               18,
			Second:               3,
			FrameAcqTime:         50,
			ZExtCoef:             2,
			OperatorName:         oper,
			Comment:              comment,
		},
	}
	for k := 0; k < nfr; k++ {
		data := make([]int16, x*y)
		for i := range data {
			data[i] = int16(100*k + i)
		}
		f.Frames = append(f.Frames, asd.Frame{
			Header: asd.FrameHeader{Number: int32(k), MaxData: data[len(data)-1], MinData: data[0]},
			Data:   data,
		})
	}
	return f
}

// Bytes returns the encoded content of f.
func Bytes(f *asd.File) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := NewEncoder(buf).Encode(f)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
