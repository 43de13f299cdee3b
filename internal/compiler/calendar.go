// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"encoding/json"
	"fmt"

	"golang.org/x/datetime/internal/intern"
)

// parseCalendarFile ingests one ca-*.json document into loc. dirName
// is the original (unnormalized) locale directory name, which is also
// the member key inside the document's "main" object.
//
// The pattern strings themselves are stored verbatim. Deriving the
// field-symbol structure a formatter needs at runtime is a separate
// problem and no concern of the table layout.
// https://unicode.org/reports/tr35/tr35-dates.html#Date_Field_Symbol_Table
func (b *builder) parseCalendarFile(raw []byte, dirName string, loc *localeEntry) error {
	main, err := member(raw, "main")
	if err != nil {
		return err
	}
	localeObj, err := member(main, dirName)
	if err != nil {
		return err
	}
	dates, err := member(localeObj, "dates")
	if err != nil {
		return err
	}
	calendars, err := member(dates, "calendars")
	if err != nil {
		return err
	}

	return walkObject(calendars, func(name string, value json.RawMessage) error {
		// The generic calendar is not a resolvable Unicode calendar
		// key; it never reaches the public surface.
		if name == "generic" {
			return nil
		}
		entry := b.ensureCalendar(loc, name)
		if err := b.parseCalendar(entry, value); err != nil {
			return fmt.Errorf("calendar %q: %w", name, err)
		}
		return nil
	})
}

// ensureCalendar returns the locale's record for the named calendar,
// creating it on the locale's first sighting and recording the name in
// the global calendar list on any locale's first sighting.
func (b *builder) ensureCalendar(loc *localeEntry, name string) *calendarEntry {
	if !b.calendarSeen[name] {
		b.calendarSeen[name] = true
		b.calendars = append(b.calendars, name)
	}
	if entry, ok := loc.calendars[name]; ok {
		return entry
	}
	entry := &calendarEntry{name: b.strings.Intern(name)}
	loc.calendars[name] = entry
	return entry
}

func (b *builder) parseCalendar(entry *calendarEntry, value json.RawMessage) error {
	dateFormats, err := member(value, "dateFormats")
	if err != nil {
		return err
	}
	if entry.dateFormats, err = b.parseFormatSet(dateFormats); err != nil {
		return fmt.Errorf("dateFormats: %w", err)
	}

	timeFormats, err := member(value, "timeFormats")
	if err != nil {
		return err
	}
	if entry.timeFormats, err = b.parseFormatSet(timeFormats); err != nil {
		return fmt.Errorf("timeFormats: %w", err)
	}

	dateTimeFormats, err := member(value, "dateTimeFormats")
	if err != nil {
		return err
	}
	if entry.dateTimeFormats, err = b.parseFormatSet(dateTimeFormats); err != nil {
		return fmt.Errorf("dateTimeFormats: %w", err)
	}

	available, err := member(dateTimeFormats, "availableFormats")
	if err != nil {
		return fmt.Errorf("dateTimeFormats: %w", err)
	}
	err = walkObject(available, func(key string, value json.RawMessage) error {
		var pattern string
		if err := json.Unmarshal(value, &pattern); err != nil {
			return fmt.Errorf("availableFormats %q: %w", key, err)
		}
		entry.availableFormats = append(entry.availableFormats, b.strings.Intern(pattern))
		return nil
	})
	if err != nil {
		return err
	}

	if n := len(entry.availableFormats); n > b.maxAvailableFormats {
		b.maxAvailableFormats = n
	}
	return nil
}

// parseFormatSet interns the four verbosity tiers of one format group.
func (b *builder) parseFormatSet(raw json.RawMessage) (formatSet, error) {
	var set formatSet
	for _, tier := range []struct {
		name string
		id   *intern.ID
	}{
		{"full", &set.full},
		{"long", &set.long},
		{"medium", &set.medium},
		{"short", &set.short},
	} {
		pattern, err := stringMember(raw, tier.name)
		if err != nil {
			return formatSet{}, err
		}
		*tier.id = b.strings.Intern(pattern)
	}
	return set, nil
}
