// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmap provides read-only memory-mapped access to capture files.
//
// Files may still be written (or truncated) by the acquisition software
// while they are mapped. Reads of pages past the new end of a shrunk file
// fault; ReadAt turns that fault into io.ErrUnexpectedEOF so decoders treat
// it as truncated input.
package mmap // import "github.com/go-lpc/afm/internal/mmap"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

var (
	errClosed = errors.New("mmap: closed")
)

// Handle is a read-only view over a memory-mapped file.
type Handle struct {
	data  []byte
	unmap bool
}

// Open memory-maps the named file for reading.
// Empty files are not mapped: the returned handle simply holds no data.
func Open(fname string) (*Handle, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("mmap: could not open %q: %w", fname, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmap: could not stat %q: %w", fname, err)
	}

	size := fi.Size()
	switch {
	case size < 0:
		return nil, fmt.Errorf("mmap: file %q has negative size", fname)
	case size == 0:
		return &Handle{data: []byte{}}, nil
	case size != int64(int(size)):
		return nil, fmt.Errorf("mmap: file %q is too large", fname)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: could not map %q: %w", fname, err)
	}

	h := &Handle{data: data, unmap: true}
	runtime.SetFinalizer(h, (*Handle).Close)
	return h, nil
}

// HandleFrom wraps an in-memory buffer into a Handle.
// The buffer is not unmapped on Close.
func HandleFrom(data []byte) *Handle {
	return &Handle{data: data}
}

// Close closes the mmap handle.
func (h *Handle) Close() error {
	if h == nil {
		return os.ErrInvalid
	}

	if h.data == nil {
		return nil
	}
	data := h.data
	h.data = nil
	runtime.SetFinalizer(h, nil)

	if !h.unmap {
		return nil
	}
	return unix.Munmap(data)
}

// Len returns the length of the underlying memory-mapped file.
func (h *Handle) Len() int {
	return len(h.data)
}

// At returns the byte at index i.
func (h *Handle) At(i int) byte {
	return h.data[i]
}

// ReadAt implements the io.ReaderAt interface.
func (h *Handle) ReadAt(p []byte, off int64) (n int, err error) {
	if h == nil {
		return 0, os.ErrInvalid
	}

	if h.data == nil {
		return 0, errClosed
	}
	if off < 0 || int64(len(h.data)) < off {
		return 0, fmt.Errorf("mmap: invalid ReadAt offset %d", off)
	}

	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if _, ok := e.(interface{ Addr() uintptr }); !ok {
			panic(e)
		}
		n, err = 0, fmt.Errorf("mmap: fault reading at offset %d (file shrunk?): %w", off, io.ErrUnexpectedEOF)
	}()

	n = copy(p, h.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Reader returns a sequential reader over the whole mapped file.
func (h *Handle) Reader() *io.SectionReader {
	return io.NewSectionReader(h, 0, int64(h.Len()))
}

var (
	_ io.ReaderAt = (*Handle)(nil)
	_ io.Closer   = (*Handle)(nil)
)
