// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocaleFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
		ok   bool
	}{
		{"en", LocaleEn, true},
		{"en-US", LocaleEn_US, true},
		{"fr", LocaleFr, true},
		{"de", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := LocaleFromString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LocaleFromString(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCalendarFromString(t *testing.T) {
	got, ok := CalendarFromString("gregory")
	if !ok || got != CalendarGregory {
		t.Errorf("CalendarFromString(gregory) = %v, %v; want %v, true", got, ok, CalendarGregory)
	}
	// The deprecated alias resolves to the same member.
	alias, ok := CalendarFromString("gregorian")
	if !ok || alias != got {
		t.Errorf("CalendarFromString(gregorian) = %v, %v; want %v, true", alias, ok, got)
	}
	if _, ok := CalendarFromString("japanese"); ok {
		t.Error("CalendarFromString(japanese) = ok; want not found")
	}
}

func TestGetRegionalHourCycles(t *testing.T) {
	tests := []struct {
		region string
		want   []HourCycle
	}{
		{"001", []HourCycle{H23, H12}},
		{"FR", []HourCycle{H23}},
		{"US", []HourCycle{H23, H12}},
		{"ZZ", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := GetRegionalHourCycles(tt.region)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("GetRegionalHourCycles(%q) mismatch (-want +got):\n%s", tt.region, diff)
		}
	}
}

func TestGetCalendarDateFormat(t *testing.T) {
	got, ok := GetCalendarDateFormat("fr", "gregory")
	if !ok {
		t.Fatal("GetCalendarDateFormat(fr, gregory) not found")
	}
	want := CalendarFormat{
		Full:   CalendarPattern{Pattern: "EEEE d MMMM y"},
		Long:   CalendarPattern{Pattern: "d MMMM y"},
		Medium: CalendarPattern{Pattern: "d MMM y"},
		Short:  CalendarPattern{Pattern: "dd/MM/y"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}

	// The alias reaches the same cell as the canonical name.
	viaAlias, ok := GetCalendarDateFormat("fr", "gregorian")
	if !ok {
		t.Fatal("GetCalendarDateFormat(fr, gregorian) not found")
	}
	if diff := cmp.Diff(got, viaAlias); diff != "" {
		t.Errorf("alias lookup mismatch (-canonical +alias):\n%s", diff)
	}
}

func TestGetCalendarDateFormatNotFound(t *testing.T) {
	// en has buddhist data but no gregorian file, so its gregory cell
	// is a zero row.
	tests := []struct {
		locale, calendar string
	}{
		{"en", "gregory"},
		{"fr", "buddhist"},
		{"de", "gregory"},
		{"fr", "japanese"},
	}
	for _, tt := range tests {
		if _, ok := GetCalendarDateFormat(tt.locale, tt.calendar); ok {
			t.Errorf("GetCalendarDateFormat(%q, %q) = ok; want not found", tt.locale, tt.calendar)
		}
	}
}

func TestGetCalendarTimeFormat(t *testing.T) {
	got, ok := GetCalendarTimeFormat("en", "buddhist")
	if !ok {
		t.Fatal("GetCalendarTimeFormat(en, buddhist) not found")
	}
	want := CalendarFormat{
		Full:   CalendarPattern{Pattern: "h:mm:ss a zzzz"},
		Long:   CalendarPattern{Pattern: "h:mm:ss a z"},
		Medium: CalendarPattern{Pattern: "h:mm:ss a"},
		Short:  CalendarPattern{Pattern: "h:mm a"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCalendarDateTimeFormat(t *testing.T) {
	got, ok := GetCalendarDateTimeFormat("en-US", "gregory")
	if !ok {
		t.Fatal("GetCalendarDateTimeFormat(en-US, gregory) not found")
	}
	want := CalendarFormat{
		Full:   CalendarPattern{Pattern: "{1} 'at' {0}"},
		Long:   CalendarPattern{Pattern: "{1} 'at' {0}"},
		Medium: CalendarPattern{Pattern: "{1}, {0}"},
		Short:  CalendarPattern{Pattern: "{1}, {0}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCalendarAvailableFormats(t *testing.T) {
	tests := []struct {
		locale, calendar string
		want             []CalendarPattern
	}{
		{"en", "buddhist", []CalendarPattern{{Pattern: "ccc"}, {Pattern: "y G"}, {Pattern: "M/y GGGGG"}}},
		{"en-US", "gregory", []CalendarPattern{{Pattern: "M/y"}, {Pattern: "M/d/y"}}},
		{"fr", "gregory", []CalendarPattern{{Pattern: "MM/y"}}},
		{"en", "gregory", nil},
		{"de", "gregory", nil},
	}
	for _, tt := range tests {
		got := GetCalendarAvailableFormats(tt.locale, tt.calendar)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("GetCalendarAvailableFormats(%q, %q) mismatch (-want +got):\n%s",
				tt.locale, tt.calendar, diff)
		}
	}
}

func TestHourCycleString(t *testing.T) {
	tests := []struct {
		hc   HourCycle
		want string
	}{
		{H11, "H11"},
		{H12, "H12"},
		{H23, "H23"},
		{H24, "H24"},
		{HourCycle(99), "HourCycle(unknown)"},
	}
	for _, tt := range tests {
		if got := tt.hc.String(); got != tt.want {
			t.Errorf("HourCycle(%d).String() = %q; want %q", uint8(tt.hc), got, tt.want)
		}
	}
}

func TestTableBounds(t *testing.T) {
	for i := range calendarTable {
		for j := range calendarTable[i] {
			data := &calendarTable[i][j]
			if int(data.availableFormatsSize) > availableFormatsCap {
				t.Errorf("cell [%d][%d]: availableFormatsSize %d exceeds capacity %d",
					i, j, data.availableFormatsSize, availableFormatsCap)
			}
			for _, id := range data.availableFormats {
				if int(id) >= len(stringTable) {
					t.Errorf("cell [%d][%d]: string index %d out of range", i, j, id)
				}
			}
		}
	}
	for i, row := range hourCycleTable {
		if int(row.size) > hourCyclesCap {
			t.Errorf("row %d: size %d exceeds capacity %d", i, row.size, hourCyclesCap)
		}
	}
}
