// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package afm

import (
	"reflect"
	"testing"
)

func TestMetadata(t *testing.T) {
	md := NewMetadata().
		Set(KeyXPixel, int32(256)).
		Set(KeyYPixel, 128).
		Set(KeyXPixelSize, float32(1.5)).
		Set(KeyYPixelSize, 2.5).
		Set(KeyYear, int64(2018)).
		Set(KeyMonth, int16(7)).
		Set(KeyOperator, "operator").
		Set("avgFlag", true)

	if got, want := md.Len(), 8; got != want {
		t.Fatalf("invalid len: got=%d, want=%d", got, want)
	}
	if got, want := md.Keys(), []string{
		KeyXPixel, KeyYPixel, KeyXPixelSize, KeyYPixelSize,
		KeyYear, KeyMonth, KeyOperator, "avgFlag",
	}; !reflect.DeepEqual(got, want) {
		t.Fatalf("invalid keys:\ngot= %q\nwant=%q", got, want)
	}

	if x, y := md.Pixels(); x != 256 || y != 128 {
		t.Fatalf("invalid pixels: x=%d, y=%d", x, y)
	}
	if x, y := md.PixelSize(); x != 1.5 || y != 2.5 {
		t.Fatalf("invalid pixel size: x=%v, y=%v", x, y)
	}
	if got, want := md.Timestamp(), [6]int{2018, 7, 0, 0, 0, 0}; got != want {
		t.Fatalf("invalid timestamp: got=%v, want=%v", got, want)
	}
	if got, want := md.Operator(), "operator"; got != want {
		t.Fatalf("invalid operator: got=%q, want=%q", got, want)
	}
	if got := md.Comment(); got != "" {
		t.Fatalf("invalid comment: got=%q", got)
	}
	if got, ok := md.Float(KeyYear); !ok || got != 2018 {
		t.Fatalf("invalid int->float conversion: got=%v (ok=%v)", got, ok)
	}
	if _, ok := md.Int("avgFlag"); ok {
		t.Fatalf("bool value converted to int")
	}
	if _, ok := md.Text(KeyXPixel); ok {
		t.Fatalf("int value converted to string")
	}
	if v, ok := md.Get("avgFlag"); !ok || v != true {
		t.Fatalf("invalid value: got=%v (ok=%v)", v, ok)
	}

	md.Set(KeyXPixel, 512)
	if x, _ := md.Pixels(); x != 512 {
		t.Fatalf("invalid pixels after update: got=%d", x)
	}
	if got, want := md.Len(), 8; got != want {
		t.Fatalf("invalid len after update: got=%d, want=%d", got, want)
	}
}

func TestMetadataZero(t *testing.T) {
	var md Metadata
	if md.Len() != 0 || md.Keys() != nil {
		t.Fatalf("invalid zero metadata")
	}
	if _, ok := md.Get(KeyXPixel); ok {
		t.Fatalf("invalid zero metadata lookup")
	}
	if decoded, declared := md.Frames(); decoded != 0 || declared != 0 {
		t.Fatalf("invalid zero frame counts")
	}

	md = md.Set(KeyDecoded, 3).Set(KeyDeclared, 5)
	if got, want := md.Keys(), []string{KeyDecoded, KeyDeclared}; !reflect.DeepEqual(got, want) {
		t.Fatalf("invalid keys: got=%q, want=%q", got, want)
	}
	if decoded, declared := md.Frames(); decoded != 3 || declared != 5 {
		t.Fatalf("invalid frame counts: decoded=%d, declared=%d", decoded, declared)
	}
}

func TestChannel(t *testing.T) {
	for _, tc := range []struct {
		ch   Channel
		want string
	}{
		{Channel1, "ch1"},
		{Channel2, "ch2"},
		{Channel(42), "Channel(42)"},
	} {
		if got := tc.ch.String(); got != tc.want {
			t.Fatalf("invalid channel name: got=%q, want=%q", got, tc.want)
		}
	}

	if got := (Options{}).Chan(); got != Channel1 {
		t.Fatalf("invalid default channel: got=%v", got)
	}
	if got := (Options{Channel: Channel2}).Chan(); got != Channel2 {
		t.Fatalf("invalid channel: got=%v", got)
	}
}
