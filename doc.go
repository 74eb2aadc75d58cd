// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package afm holds the format-agnostic contract shared by the decoders of
// scanning-probe microscope capture files.
//
// A decoder turns a vendor container into an Image: an ordered sequence of
// calibrated 2-D height maps (in nanometres) and a Metadata record.
// Callers pick a decoder by file extension through a Registry and never
// depend on format-specific field names.
package afm // import "github.com/go-lpc/afm"

import (
	"runtime/debug"
)

// modulePath is the import path of this module.
const modulePath = "github.com/go-lpc/afm"

// Version returns the version of afm and its checksum.
// The returned values are only valid in binaries built with module support.
// Binaries built from within the afm module itself (e.g. asd-dump) report
// the main module version, which is "(devel)" for local builds.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	return versionOf(b)
}

func versionOf(b *debug.BuildInfo) (version, sum string) {
	if b == nil {
		return "", ""
	}

	if b.Main.Path == modulePath {
		return modVersion(&b.Main)
	}
	for _, m := range b.Deps {
		if m.Path == modulePath {
			return modVersion(m)
		}
	}
	return "", ""
}

// modVersion describes m, following its replacement if any.
// A local replacement (no version) is flagged with a trailing '*'.
func modVersion(m *debug.Module) (version, sum string) {
	r := m.Replace
	switch {
	case r == nil:
		return m.Version, m.Sum
	case r.Version == "" && r.Path == "":
		return m.Version + "*", ""
	case r.Version == "":
		return r.Path, r.Sum
	case r.Path == "":
		return r.Version, r.Sum
	default:
		return r.Path + " " + r.Version, r.Sum
	}
}
