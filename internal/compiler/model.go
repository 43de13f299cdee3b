// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"golang.org/x/datetime"
	"golang.org/x/datetime/internal/intern"
)

// An Alias folds a semantically equivalent name onto a canonical enum
// member during emission. It never extends the data model itself.
type Alias struct {
	Alias     string
	Canonical string
}

// calendarAliases maps deprecated CLDR calendar keys onto their BCP 47
// equivalents. TODO: feed this from the BCP 47 supplemental data
// instead of hardcoding the one known case.
var calendarAliases = []Alias{
	{Alias: "gregorian", Canonical: "gregory"},
}

// formatSet holds the four CLDR verbosity tiers of one format group.
// The tiers are always populated together.
type formatSet struct {
	full, long, medium, short intern.ID
}

// calendarEntry is one calendar's data within one locale.
type calendarEntry struct {
	name             intern.ID
	dateFormats      formatSet
	timeFormats      formatSet
	dateTimeFormats  formatSet
	availableFormats []intern.ID
}

// localeEntry collects every calendar seen for one normalized locale.
// Multiple input files may accumulate into the same entry.
type localeEntry struct {
	calendars map[string]*calendarEntry
}

// builder is the mutable accumulation state of one compiler run. It is
// passed through the parsing steps and then frozen into a model; the
// type split keeps the emitters off the mutable surface.
type builder struct {
	strings *intern.Table

	locales     map[string]*localeEntry
	localeNames []string // normalized keys, first-seen order

	hourCycles       map[string][]datetime.HourCycle
	hourCycleRegions []string // first-seen order
	regionSeen       map[string]bool

	calendars    []string // distinct calendar names, first-seen order
	calendarSeen map[string]bool

	maxAvailableFormats int
}

func newBuilder() *builder {
	return &builder{
		strings:      intern.NewTable(),
		locales:      make(map[string]*localeEntry),
		hourCycles:   make(map[string][]datetime.HourCycle),
		regionSeen:   make(map[string]bool),
		calendarSeen: make(map[string]bool),
	}
}

// ensureLocale returns the entry for the normalized locale key,
// creating it and recording the key on first sight.
func (b *builder) ensureLocale(key string) *localeEntry {
	if loc, ok := b.locales[key]; ok {
		return loc
	}
	loc := &localeEntry{calendars: make(map[string]*calendarEntry)}
	b.locales[key] = loc
	b.localeNames = append(b.localeNames, key)
	return loc
}

// model is the frozen, read-only view consumed by the emitters.
type model struct {
	strings *intern.Table

	locales     map[string]*localeEntry
	localeNames []string

	hourCycles       map[string][]datetime.HourCycle
	hourCycleRegions []string

	calendars       []string
	calendarAliases []Alias

	maxAvailableFormats int
}

// freeze converts the builder into its immutable emission view. No
// string may be interned afterwards.
func (b *builder) freeze() *model {
	b.strings.Freeze()
	return &model{
		strings:             b.strings,
		locales:             b.locales,
		localeNames:         b.localeNames,
		hourCycles:          b.hourCycles,
		hourCycleRegions:    b.hourCycleRegions,
		calendars:           b.calendars,
		calendarAliases:     calendarAliases,
		maxAvailableFormats: b.maxAvailableFormats,
	}
}

// maxHourCycles returns the longest per-region hour-cycle list, the
// fixed row width of the emitted hour-cycle table.
func (m *model) maxHourCycles() int {
	max := 0
	for _, region := range m.hourCycleRegions {
		if n := len(m.hourCycles[region]); n > max {
			max = n
		}
	}
	return max
}
