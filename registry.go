// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package afm

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-lpc/afm/internal/mmap"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

// extZstd is the extension of zstd-compressed capture files.
// "scan.asd.zst" is decoded as a ".asd" file.
const extZstd = ".zst"

// Registry maps file extensions to decoders.
type Registry struct {
	mu   sync.RWMutex
	fmts map[string]Format
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fmts: make(map[string]Format)}
}

func normExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Register makes a format available for the provided file extension.
// Register panics if f is nil or if the extension is already registered.
func (reg *Registry) Register(ext string, f Format) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if f == nil {
		panic("afm: Register format is nil")
	}
	ext = normExt(ext)
	if ext == "" || ext == extZstd {
		panic(fmt.Sprintf("afm: invalid extension %q", ext))
	}
	if _, dup := reg.fmts[ext]; dup {
		panic("afm: Register called twice for extension " + ext)
	}
	reg.fmts[ext] = f
}

// Lookup returns the format registered for the provided file extension.
func (reg *Registry) Lookup(ext string) (Format, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	f, ok := reg.fmts[normExt(ext)]
	return f, ok
}

// Exts returns the sorted list of registered extensions.
func (reg *Registry) Exts() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	exts := make([]string, 0, len(reg.fmts))
	for ext := range reg.fmts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (reg *Registry) formatOf(fname string) (Format, bool, error) {
	var (
		ext = strings.ToLower(filepath.Ext(fname))
		zst = ext == extZstd
	)
	if zst {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(fname, filepath.Ext(fname))))
	}

	f, ok := reg.Lookup(ext)
	if !ok {
		return nil, zst, fmt.Errorf("afm: no decoder for %q: %w", fname, ErrUnknownFormat)
	}
	return f, zst, nil
}

// Open decodes the named file with the format registered for its
// extension. Files ending with ".zst" are decompressed on the fly and
// dispatched on their inner extension.
func (reg *Registry) Open(ctx context.Context, fname string, opts Options) (*Image, error) {
	f, zst, err := reg.formatOf(fname)
	if err != nil {
		return nil, err
	}

	if zst {
		return openZstd(ctx, f, fname, opts)
	}

	h, err := mmap.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("afm: could not open %q: %w", fname, err)
	}
	defer h.Close()

	img, err := f.Decode(ctx, h.Reader(), opts)
	if err != nil {
		return nil, fmt.Errorf("afm: could not decode %q: %w", fname, err)
	}
	return img, nil
}

func openZstd(ctx context.Context, f Format, fname string, opts Options) (*Image, error) {
	raw, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("afm: could not open %q: %w", fname, err)
	}
	defer raw.Close()

	zr, err := zstd.NewReader(bufio.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("afm: could not create zstd reader for %q: %w", fname, err)
	}
	defer zr.Close()

	img, err := f.Decode(ctx, zr, opts)
	if err != nil {
		return nil, fmt.Errorf("afm: could not decode %q: %w", fname, err)
	}
	return img, nil
}

// OpenAll decodes the named files concurrently.
// The returned images are in the order of fnames.
// The first error cancels the remaining decodes.
func (reg *Registry) OpenAll(ctx context.Context, fnames []string, opts Options) ([]*Image, error) {
	imgs := make([]*Image, len(fnames))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i := range fnames {
		i := i
		grp.Go(func() error {
			img, err := reg.Open(ctx, fnames[i], opts)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return nil, err
	}
	return imgs, nil
}
