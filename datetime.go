// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime provides CLDR-derived date and time formatting
// data: per-locale, per-calendar format patterns and per-region hour
// cycle preferences, resolved from statically generated tables.
//
// The tables in this package are compiled by gendatetime from the
// cldr-core and cldr-dates JSON distributions; see cmd/gendatetime.
package datetime

//go:generate go run ./cmd/gendatetime -core testdata/cldr-core -dates testdata/cldr-dates -decls enums.go -defs tables.go

// A HourCycle is one of the four CLDR conventions for numbering the
// hours of a day.
type HourCycle uint8

const (
	H11 HourCycle = iota // "K": hours 0-11, 12-hour cycle
	H12                  // "h": hours 1-12, 12-hour cycle
	H23                  // "H": hours 0-23, 24-hour cycle
	H24                  // "k": hours 1-24, 24-hour cycle
)

// String returns the CLDR name of the hour cycle.
func (hc HourCycle) String() string {
	switch hc {
	case H11:
		return "H11"
	case H12:
		return "H12"
	case H23:
		return "H23"
	case H24:
		return "H24"
	}
	return "HourCycle(unknown)"
}

// A CalendarPattern is one display-format template. The pattern is
// kept verbatim from the source data; its field symbols are not
// interpreted here.
type CalendarPattern struct {
	Pattern string
}

// A CalendarFormat holds the four CLDR verbosity tiers of one format
// group (date, time, or the date-time combining formats).
type CalendarFormat struct {
	Full   CalendarPattern
	Long   CalendarPattern
	Medium CalendarPattern
	Short  CalendarPattern
}
