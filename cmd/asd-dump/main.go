// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command asd-dump decodes and displays ASD scanning-probe capture files.
//
// Usage: asd-dump [OPTIONS] FILE1 [FILE2 [FILE3 ...]]
//
// Example:
//
//  $> asd-dump ./testdata/scan.asd
//  === file: ./testdata/scan.asd ===
//  format:                asd
//  channel:               ch1
//  fileVersion:           1
//  [...]
//  frames:                3/5
//    frame    0: min=   -3.902 max=   -0.000 mean=   -1.951
//    frame    1: min=   -5.854 max=   -1.951 mean=   -3.902
//  [...]
package main // import "github.com/go-lpc/afm/cmd/asd-dump"

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-lpc/afm"
	"github.com/go-lpc/afm/asd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	msg = log.New(os.Stdout, "asd-dump: ", 0)
)

func main() {
	err := xmain(os.Stdout, os.Args[1:])
	if err != nil {
		msg.Fatalf("%+v", err)
	}
}

func xmain(w io.Writer, args []string) error {
	var (
		fset = flag.NewFlagSet("asd-dump", flag.ContinueOnError)

		ch      = fset.Int("ch", 1, "channel to decode (1 or 2)")
		rot     = fset.Bool("rot", false, "rotate frames by 90 degrees clockwise")
		shift   = fset.Int("shift", 0, "circular shift of the frames columns")
		nframes = fset.Int("frames", 3, "number of frames to summarize (-1: all)")
		verbose = fset.Bool("v", false, "enable verbose mode")
	)

	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), `Usage: asd-dump [OPTIONS] FILE1 [FILE2 [FILE3 ...]]

ex:
 $> asd-dump ./testdata/scan.asd
 $> asd-dump -ch=2 -rot -frames=-1 ./testdata/scan.asd.zst

options:
`)
		fset.PrintDefaults()
	}

	err := fset.Parse(args)
	if err != nil {
		return fmt.Errorf("could not parse input arguments: %w", err)
	}

	if fset.NArg() == 0 {
		fset.Usage()
		return fmt.Errorf("missing path to input ASD file")
	}

	opts := afm.Options{
		Channel: afm.Channel(*ch),
		Rotate:  *rot,
		Shift:   *shift,
	}

	var dec asd.Format
	if *verbose {
		dec.Msg = msg
	}

	reg := afm.NewRegistry()
	reg.Register(asd.Ext, dec)

	return process(w, reg, fset.Args(), opts, *nframes)
}

func process(w io.Writer, reg *afm.Registry, fnames []string, opts afm.Options, nframes int) error {
	imgs, err := reg.OpenAll(context.Background(), fnames, opts)
	if err != nil {
		return fmt.Errorf("could not decode files: %w", err)
	}

	wbuf := bufio.NewWriter(w)
	defer wbuf.Flush()

	for i, img := range imgs {
		dump(wbuf, fnames[i], img, nframes)
	}

	return wbuf.Flush()
}

func dump(w io.Writer, fname string, img *afm.Image, nframes int) {
	md := img.Metadata
	fmt.Fprintf(w, "=== file: %s ===\n", fname)
	for _, k := range md.Keys() {
		switch k {
		case afm.KeyDecoded, afm.KeyDeclared:
			continue
		}
		v, _ := md.Get(k)
		fmt.Fprintf(w, "%-22s %v\n", k+":", v)
	}

	decoded, declared := md.Frames()
	fmt.Fprintf(w, "%-22s %d/%d\n", "frames:", decoded, declared)

	if nframes < 0 || nframes > len(img.Frames) {
		nframes = len(img.Frames)
	}
	for i, fr := range img.Frames[:nframes] {
		vs := values(fr)
		fmt.Fprintf(w, "  frame % 4d: min=% 9.3f max=% 9.3f mean=% 9.3f\n",
			i, floats.Min(vs), floats.Max(vs), floats.Sum(vs)/float64(len(vs)),
		)
	}
	if n := len(img.Frames) - nframes; n > 0 {
		fmt.Fprintf(w, "  [... %d more frames]\n", n)
	}
}

func values(m *mat.Dense) []float64 {
	r, c := m.Dims()
	vs := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		vs = append(vs, m.RawRowView(i)...)
	}
	return vs
}
