// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asd

import (
	"context"
	"io"
	"log"

	"github.com/go-lpc/afm"
)

// Format exposes the ASD decoder through the afm.Format contract.
type Format struct {
	Msg *log.Logger // logger for dropped frames. nil disables logging.
}

func (Format) Name() string { return "asd" }

// Decode decodes the ASD file read from r.
func (ff Format) Decode(ctx context.Context, r io.Reader, opts afm.Options) (*afm.Image, error) {
	dec := NewDecoder(r, opts.Chan())
	dec.Msg = ff.Msg

	var f File
	err := dec.DecodeContext(ctx, &f)
	if err != nil {
		return nil, err
	}

	return &afm.Image{
		Frames:   f.Calibrated(opts),
		Metadata: f.Metadata(),
	}, nil
}

// Metadata returns the header of f as a metadata record.
// Header fields are listed in wire order.
func (f *File) Metadata() afm.Metadata {
	hdr := &f.Header
	md := afm.NewMetadata().
		Set(afm.KeyFormat, "asd").
		Set(afm.KeyChannel, f.Channel.String()).
		Set("fileVersion", hdr.FileVersion).
		Set("fileHeaderSize", hdr.FileHeaderSize).
		Set("frameHeaderSize", hdr.FrameHeaderSize).
		Set("encNumber", hdr.EncNumber).
		Set("operationNameSize", hdr.OperationNameSize).
		Set("commentSize", hdr.CommentSize).
		Set("dataTypeCh1", hdr.DataTypeCh1).
		Set("dataTypeCh2", hdr.DataTypeCh2).
		Set("numberFramesRecorded", hdr.NumberFramesRecorded).
		Set("numberFramesCurrent", hdr.NumberFramesCurrent).
		Set("scanDirection", hdr.ScanDirection).
		Set("fileName", hdr.FileName).
		Set(afm.KeyXPixel, hdr.XPixel).
		Set(afm.KeyYPixel, hdr.YPixel).
		Set("xScanRange", hdr.XScanRange).
		Set("yScanRange", hdr.YScanRange).
		Set("avgFlag", hdr.AvgFlag).
		Set("avgNumber", hdr.AvgNumber).
		Set(afm.KeyYear, hdr.Year).
		Set(afm.KeyMonth, hdr.Month).
		Set(afm.KeyDay, hdr.Day).
		Set(afm.KeyHour, hdr.Hour).
		Set(afm.KeyMinute, hdr.Minute).
		Set(afm.KeySecond, hdr.Second).
		Set("xRoundDeg", hdr.XRoundDeg).
		Set("yRoundDeg", hdr.YRoundDeg).
		Set("frameAcqTime", hdr.FrameAcqTime).
		Set("sensorSens", hdr.SensorSens).
		Set("phaseSens", hdr.PhaseSens).
		Set("machineNum", hdr.MachineNum).
		Set("adRange", hdr.ADRange).
		Set("adRes", hdr.ADRes).
		Set("xMaxScanRange", hdr.XMaxScanRange).
		Set("yMaxScanRange", hdr.YMaxScanRange).
		Set("xExtCoef", hdr.XExtCoef).
		Set("yExtCoef", hdr.YExtCoef).
		Set("zExtCoef", hdr.ZExtCoef).
		Set("zDriveGain", hdr.ZDriveGain).
		Set(afm.KeyOperator, hdr.OperatorName).
		Set(afm.KeyComment, hdr.Comment)

	if hdr.XPixel > 0 && hdr.YPixel > 0 {
		md.Set(afm.KeyXPixelSize, float64(hdr.XScanRange)/float64(hdr.XPixel))
		md.Set(afm.KeyYPixelSize, float64(hdr.YScanRange)/float64(hdr.YPixel))
	}

	return md.
		Set(afm.KeyDecoded, f.Decoded()).
		Set(afm.KeyDeclared, f.Declared())
}

var (
	_ afm.Format = (*Format)(nil)
)
