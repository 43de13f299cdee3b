// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"golang.org/x/datetime"
)

func coreFS(timeData string) fstest.MapFS {
	return fstest.MapFS{
		timeDataPath: &fstest.MapFile{Data: []byte(timeData)},
	}
}

func TestParseHourCycle(t *testing.T) {
	tests := []struct {
		in   string
		want datetime.HourCycle
		ok   bool
	}{
		{"h", datetime.H12, true},
		{"H", datetime.H23, true},
		{"K", datetime.H11, true},
		{"k", datetime.H24, true},
		{"hb", 0, false},
		{"hB", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHourCycle(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseHourCycle(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseHourCycles(t *testing.T) {
	b := newBuilder()
	err := b.parseHourCycles(coreFS(`{"supplemental": {"timeData": {
		"001": {"_allowed": "H h"},
		"JP": {"_allowed": "H K h hb hB"},
		"US": {"_allowed": "h hb H hB"}
	}}}`))
	if err != nil {
		t.Fatal(err)
	}
	wantRegions := []string{"001", "JP", "US"}
	if diff := cmp.Diff(wantRegions, b.hourCycleRegions); diff != "" {
		t.Errorf("region order mismatch (-want +got):\n%s", diff)
	}
	wantCycles := map[string][]datetime.HourCycle{
		"001": {datetime.H23, datetime.H12},
		"JP":  {datetime.H23, datetime.H11, datetime.H12},
		"US":  {datetime.H12, datetime.H23},
	}
	if diff := cmp.Diff(wantCycles, b.hourCycles); diff != "" {
		t.Errorf("cycles mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHourCyclesDuplicateRegion(t *testing.T) {
	b := newBuilder()
	err := b.parseHourCycles(coreFS(`{"supplemental": {"timeData": {
		"US": {"_allowed": "h"},
		"US": {"_allowed": "H"}
	}}}`))
	if err != nil {
		t.Fatal(err)
	}
	// Both occurrences are visited; the second wins, and the ordering
	// list records the region once.
	if diff := cmp.Diff([]string{"US"}, b.hourCycleRegions); diff != "" {
		t.Errorf("region order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]datetime.HourCycle{datetime.H23}, b.hourCycles["US"]); diff != "" {
		t.Errorf("cycles mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHourCyclesErrors(t *testing.T) {
	tests := []struct {
		name     string
		timeData string
	}{
		{"missing supplemental", `{}`},
		{"missing timeData", `{"supplemental": {}}`},
		{"missing _allowed", `{"supplemental": {"timeData": {"US": {}}}}`},
		{"bad _allowed", `{"supplemental": {"timeData": {"US": {"_allowed": 5}}}}`},
	}
	for _, tt := range tests {
		b := newBuilder()
		if err := b.parseHourCycles(coreFS(tt.timeData)); err == nil {
			t.Errorf("%s: got nil error", tt.name)
		}
	}
}

func TestParseHourCyclesMissingFile(t *testing.T) {
	b := newBuilder()
	if err := b.parseHourCycles(fstest.MapFS{}); err == nil {
		t.Error("got nil error for missing timeData.json")
	}
}
