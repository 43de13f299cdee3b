// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/datetime"
)

// timeDataPath is the hour-cycle preference document within the
// cldr-core tree.
// https://unicode.org/reports/tr35/tr35-dates.html#Time_Data
const timeDataPath = "supplemental/timeData.json"

// parseHourCycle maps one CLDR hour-cycle letter to its value. Letters
// outside the four known ones (the day-period codes hb and hB appear
// in real data) report ok == false and are skipped by the caller.
func parseHourCycle(s string) (datetime.HourCycle, bool) {
	switch s {
	case "h":
		return datetime.H12, true
	case "H":
		return datetime.H23, true
	case "K":
		return datetime.H11, true
	case "k":
		return datetime.H24, true
	}
	return 0, false
}

// parseHourCycles reads timeData.json from the core tree and records
// each region's permitted hour cycles, in document order.
func (b *builder) parseHourCycles(core fs.FS) error {
	raw, err := fs.ReadFile(core, timeDataPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", timeDataPath, err)
	}
	supplemental, err := member(raw, "supplemental")
	if err != nil {
		return fmt.Errorf("%s: %w", timeDataPath, err)
	}
	timeData, err := member(supplemental, "timeData")
	if err != nil {
		return fmt.Errorf("%s: %w", timeDataPath, err)
	}
	err = walkObject(timeData, func(region string, value json.RawMessage) error {
		allowed, err := stringMember(value, "_allowed")
		if err != nil {
			return fmt.Errorf("region %q: %w", region, err)
		}
		var cycles []datetime.HourCycle
		for _, letter := range strings.Fields(allowed) {
			if hc, ok := parseHourCycle(letter); ok {
				cycles = append(cycles, hc)
			}
		}
		b.hourCycles[region] = cycles
		if !b.regionSeen[region] {
			b.regionSeen[region] = true
			b.hourCycleRegions = append(b.hourCycleRegions, region)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", timeDataPath, err)
	}
	return nil
}
