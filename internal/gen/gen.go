// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen assembles generated Go source files. A CodeWriter
// buffers declarations as they are produced, then gofmts the result
// and prepends the standard generated-code header, so callers print
// with ordinary formatting verbs and never worry about exact spacing.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"hash/fnv"
	"io"
	"strconv"
)

// A CodeWriter collects the body of one generated file.
type CodeWriter struct {
	buf  bytes.Buffer
	size int // accumulated string data bytes, reported in the trailer
}

// NewCodeWriter returns an empty CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{}
}

// Printf appends formatted text to the file body.
func (w *CodeWriter) Printf(f string, x ...interface{}) {
	fmt.Fprintf(&w.buf, f, x...)
}

// AddSize records n bytes of emitted table data. A file that recorded
// any size gets a size/checksum trailer from WriteGoFile.
func (w *CodeWriter) AddSize(n int) {
	w.size += n
}

// WriteGoFile formats the collected body as a Go source file for
// package pkg and writes it to out. The header names the generating
// command so that re-running it is reproducible from the file alone.
func (w *CodeWriter) WriteGoFile(out io.Writer, pkg, generatedBy string) error {
	var src bytes.Buffer
	fmt.Fprintf(&src, "// Code generated by %s. DO NOT EDIT.\n\n", generatedBy)
	fmt.Fprintf(&src, "package %s\n\n", pkg)
	src.Write(w.buf.Bytes())

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return fmt.Errorf("gen: format source: %w", err)
	}
	if _, err := out.Write(formatted); err != nil {
		return err
	}
	if w.size > 0 {
		h := fnv.New32a()
		h.Write(formatted)
		if _, err := fmt.Fprintf(out, "\n// Size: %d bytes of string data; Check: %X\n", w.size, h.Sum32()); err != nil {
			return err
		}
	}
	return nil
}

// Quote returns s as a Go string literal. Strings long enough to make
// a table line unreadable are folded into a concatenation of shorter
// literals, one per line.
func Quote(s string) string {
	const fold = 70
	if len(s) <= fold {
		return strconv.Quote(s)
	}
	var b bytes.Buffer
	for len(s) > fold {
		fmt.Fprintf(&b, "%s +\n\t\t", strconv.Quote(s[:fold]))
		s = s[fold:]
	}
	b.WriteString(strconv.Quote(s))
	return b.String()
}
