// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compiler turns CLDR JSON locale data into two generated Go
// source artifacts: a declarations file with synthesized enumerations
// for locales, calendars and hour-cycle regions, and a definitions
// file with dense, statically addressable data tables and their
// accessors. One run is a single deterministic pass: parse, freeze,
// emit. Identical input yields byte-identical output.
package compiler

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// Config carries the resolved inputs of one run. The caller owns
// opening and closing them; the compiler only reads and writes.
type Config struct {
	// Core is the cldr-core tree; supplemental/timeData.json must
	// exist within it.
	Core fs.FS

	// Dates is the per-locale calendar tree: one directory per locale
	// holding ca-*.json files.
	Dates fs.FS

	// Package is the package name of the generated files. Defaults to
	// "datetime".
	Package string

	// GeneratedBy names the generating command in the artifact
	// headers. Defaults to "gendatetime".
	GeneratedBy string
}

// Run compiles the configured inputs and writes the declarations and
// definitions artifacts. Any parse error aborts the run; output
// written before the failure is not valid.
func Run(cfg Config, decls, defs io.Writer) error {
	if cfg.Package == "" {
		cfg.Package = "datetime"
	}
	if cfg.GeneratedBy == "" {
		cfg.GeneratedBy = "gendatetime"
	}

	b := newBuilder()
	if err := b.parseHourCycles(cfg.Core); err != nil {
		return err
	}
	if err := b.parseAllLocales(cfg.Dates); err != nil {
		return err
	}
	m := b.freeze()

	if err := emitDeclarations(decls, m, cfg.Package, cfg.GeneratedBy); err != nil {
		return fmt.Errorf("emit declarations: %w", err)
	}
	if err := emitDefinitions(defs, m, cfg.Package, cfg.GeneratedBy); err != nil {
		return fmt.Errorf("emit definitions: %w", err)
	}
	return nil
}

// parseAllLocales walks the dates tree: every top-level directory is
// one locale, and every ca-*.json file within it one calendar
// document. Directories that normalize to the same locale key
// accumulate into one record.
func (b *builder) parseAllLocales(dates fs.FS) error {
	entries, err := fs.ReadDir(dates, ".")
	if err != nil {
		return fmt.Errorf("read dates tree: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirName := entry.Name()
		key, err := normalizeLocale(dirName)
		if err != nil {
			return err
		}
		loc := b.ensureLocale(key)

		files, err := fs.ReadDir(dates, dirName)
		if err != nil {
			return fmt.Errorf("read locale %s: %w", dirName, err)
		}
		for _, file := range files {
			name := file.Name()
			if file.IsDir() || !strings.HasPrefix(name, "ca-") || !strings.HasSuffix(name, ".json") {
				continue
			}
			raw, err := fs.ReadFile(dates, path.Join(dirName, name))
			if err != nil {
				return fmt.Errorf("read %s/%s: %w", dirName, name, err)
			}
			if err := b.parseCalendarFile(raw, dirName, loc); err != nil {
				return fmt.Errorf("%s/%s: %w", dirName, name, err)
			}
		}
	}
	return nil
}
