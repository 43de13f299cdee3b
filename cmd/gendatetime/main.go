// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gendatetime compiles CLDR JSON date and time locale data into the
// static Go tables of the datetime package.
//
// Usage:
//
//	gendatetime -core cldr-core -dates cldr-dates/main [-decls enums.go] [-defs tables.go] [-pkg datetime]
//
// The core directory must contain supplemental/timeData.json; the
// dates directory holds one subdirectory per locale with ca-*.json
// calendar files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/datetime/internal/compiler"
)

var (
	corePath  = flag.String("core", "", "path to the cldr-core directory")
	datesPath = flag.String("dates", "", "path to the per-locale calendar data directory")
	declsPath = flag.String("decls", "enums.go", "path of the generated declarations file")
	defsPath  = flag.String("defs", "tables.go", "path of the generated definitions file")
	pkg       = flag.String("pkg", "datetime", "package name for the generated files")
)

func main() {
	log.SetPrefix("gendatetime: ")
	log.SetFlags(0)
	flag.Parse()
	if *corePath == "" || *datesPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	decls, err := os.Create(*declsPath)
	if err != nil {
		return err
	}
	defer closeFile(decls, &err)

	defs, err := os.Create(*defsPath)
	if err != nil {
		return err
	}
	defer closeFile(defs, &err)

	cfg := compiler.Config{
		Core:    os.DirFS(*corePath),
		Dates:   os.DirFS(*datesPath),
		Package: *pkg,
		// Record the invocation, not the local paths' absolute form,
		// so regenerated files only change when the data does.
		GeneratedBy: fmt.Sprintf("gendatetime -core %s -dates %s -decls %s -defs %s -pkg %s",
			*corePath, *datesPath, *declsPath, *defsPath, *pkg),
	}
	return compiler.Run(cfg, decls, defs)
}

// closeFile closes f on every exit path, surfacing the close error
// only when the run itself succeeded.
func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
