// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package afm

import (
	"github.com/Velocidex/ordereddict"
)

// Keys every decoder fills in.
const (
	KeyFormat     = "format"
	KeyChannel    = "channel"
	KeyXPixel     = "xPixel"
	KeyYPixel     = "yPixel"
	KeyXPixelSize = "xPixelSize" // nm per pixel
	KeyYPixelSize = "yPixelSize" // nm per pixel
	KeyYear       = "year"
	KeyMonth      = "month"
	KeyDay        = "day"
	KeyHour       = "hour"
	KeyMinute     = "minute"
	KeySecond     = "second"
	KeyOperator   = "operator"
	KeyComment    = "comment"
	KeyDecoded    = "framesDecoded"
	KeyDeclared   = "framesDeclared"
)

// Metadata is an ordered key/value record describing a decoded file.
// Keys keep the order in which they were first set.
type Metadata struct {
	dict *ordereddict.Dict
}

// NewMetadata returns an empty metadata record.
func NewMetadata() Metadata {
	return Metadata{dict: ordereddict.NewDict()}
}

// Set sets the value associated with key and returns the record.
// Set on a zero Metadata allocates the record: keep the returned value.
func (md Metadata) Set(key string, v interface{}) Metadata {
	if md.dict == nil {
		md.dict = ordereddict.NewDict()
	}
	md.dict.Set(key, v)
	return md
}

// Get returns the value associated with key.
func (md Metadata) Get(key string) (interface{}, bool) {
	if md.dict == nil {
		return nil, false
	}
	return md.dict.Get(key)
}

// Keys returns the keys of the record, in insertion order.
func (md Metadata) Keys() []string {
	if md.dict == nil {
		return nil
	}
	return md.dict.Keys()
}

// Len returns the number of entries in the record.
func (md Metadata) Len() int {
	if md.dict == nil {
		return 0
	}
	return md.dict.Len()
}

// Int returns the value associated with key as an int.
func (md Metadata) Int(key string) (int, bool) {
	v, ok := md.Get(key)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case int:
		return v, true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// Float returns the value associated with key as a float64.
func (md Metadata) Float(key string) (float64, bool) {
	v, ok := md.Get(key)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		if i, ok := md.Int(key); ok {
			return float64(i), true
		}
		return 0, false
	}
}

// Text returns the value associated with key as a string.
func (md Metadata) Text(key string) (string, bool) {
	v, ok := md.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Pixels returns the pixel dimensions of the frames as recorded.
func (md Metadata) Pixels() (x, y int) {
	x, _ = md.Int(KeyXPixel)
	y, _ = md.Int(KeyYPixel)
	return x, y
}

// PixelSize returns the physical size of a pixel, in nm.
func (md Metadata) PixelSize() (x, y float64) {
	x, _ = md.Float(KeyXPixelSize)
	y, _ = md.Float(KeyYPixelSize)
	return x, y
}

// Timestamp returns the acquisition date as year, month, day, hour,
// minute and second. The values are passed through as recorded and do
// not necessarily form a valid date.
func (md Metadata) Timestamp() [6]int {
	var ts [6]int
	for i, k := range []string{KeyYear, KeyMonth, KeyDay, KeyHour, KeyMinute, KeySecond} {
		ts[i], _ = md.Int(k)
	}
	return ts
}

// Operator returns the operator name, if any.
func (md Metadata) Operator() string {
	s, _ := md.Text(KeyOperator)
	return s
}

// Comment returns the free-text comment, if any.
func (md Metadata) Comment() string {
	s, _ := md.Text(KeyComment)
	return s
}

// Frames returns the number of frames successfully decoded and the
// number of frames the file declared.
// decoded < declared signals truncated trailing frames.
func (md Metadata) Frames() (decoded, declared int) {
	decoded, _ = md.Int(KeyDecoded)
	declared, _ = md.Int(KeyDeclared)
	return decoded, declared
}
