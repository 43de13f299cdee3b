// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"golang.org/x/datetime/internal/gen"
	"golang.org/x/datetime/internal/intern"
)

// formatIdentifier turns an arbitrary CLDR tag into a valid, readable
// Go identifier suffix: dashes become underscores, an all-digit tag
// (such as the world region 001) is prefixed with the first letter of
// its owner enumeration, and a leading lowercase letter is
// capitalized.
func formatIdentifier(owner, s string) string {
	s = strings.ReplaceAll(s, "-", "_")
	if allDigits(s) {
		return owner[:1] + "_" + s
	}
	if c := s[0]; 'a' <= c && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// An enumSpec describes one synthesized enumeration: its ordered
// member strings, the aliases folded onto them, and whether the value
// space starts at 1 (the Locale enumeration, whose zero value is left
// unused so an absent row index can never be mistaken for a member).
type enumSpec struct {
	name    string
	doc     string
	members []string
	aliases []Alias
	fromOne bool
}

func (e *enumSpec) memberIdent(s string) string {
	return e.name + formatIdentifier(e.name, s)
}

// validAliases returns the aliases whose canonical string is actually
// a member. Aliases never extend an enumeration, so the rest are
// dropped.
func (e *enumSpec) validAliases() []Alias {
	var valid []Alias
	for _, a := range e.aliases {
		if slices.Contains(e.members, a.Canonical) {
			valid = append(valid, a)
		}
	}
	return valid
}

// enums lists the enumerations emitted for the model, in declaration
// order.
func (m *model) enums() []enumSpec {
	return []enumSpec{
		{
			name:    "Locale",
			doc:     "Locale identifies a locale with date and time formatting data.\nThe zero value is not a valid Locale.",
			members: m.localeNames,
			fromOne: true,
		},
		{
			name:    "Calendar",
			doc:     "Calendar identifies a calendar system.",
			members: m.calendars,
			aliases: m.calendarAliases,
		},
		{
			name:    "HourCycleRegion",
			doc:     "HourCycleRegion identifies a region with hour-cycle preference data.",
			members: m.hourCycleRegions,
		},
	}
}

func emitEnum(cw *gen.CodeWriter, e enumSpec) {
	for _, line := range strings.Split(e.doc, "\n") {
		cw.Printf("// %s\n", line)
	}
	cw.Printf("type %s uint16\n\n", e.name)
	cw.Printf("const (\n")
	for i, member := range e.members {
		if i == 0 {
			expr := " " + e.name + " = iota"
			if e.fromOne {
				expr += " + 1"
			}
			cw.Printf("\t%s%s // %s\n", e.memberIdent(member), expr, member)
		} else {
			cw.Printf("\t%s // %s\n", e.memberIdent(member), member)
		}
	}
	cw.Printf(")\n\n")

	if aliases := e.validAliases(); len(aliases) > 0 {
		cw.Printf("// Alias members fold deprecated names onto their canonical value.\n")
		for _, a := range aliases {
			cw.Printf("const %s = %s // %s\n", e.memberIdent(a.Alias), e.memberIdent(a.Canonical), a.Canonical)
		}
		cw.Printf("\n")
	}
}

// hashString is 32-bit FNV-1a, the same function the emitted lookup
// code applies at runtime.
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

type hashEntry struct {
	hash  uint32
	ident string
	key   string
}

// hashEntries returns one entry per member and valid alias string,
// sorted by hash for byte-stable emission. Two distinct strings
// landing on one hash is a build failure: an ambiguous lookup table
// must never be emitted.
func (e *enumSpec) hashEntries() ([]hashEntry, error) {
	var entries []hashEntry
	seen := make(map[uint32]string)
	add := func(key, ident string) error {
		h := hashString(key)
		if prev, ok := seen[h]; ok {
			return fmt.Errorf("%s: hash collision between %q and %q", e.name, prev, key)
		}
		seen[h] = key
		entries = append(entries, hashEntry{hash: h, ident: ident, key: key})
		return nil
	}
	for _, member := range e.members {
		if err := add(member, e.memberIdent(member)); err != nil {
			return nil, err
		}
	}
	for _, a := range e.validAliases() {
		if err := add(a.Alias, e.memberIdent(a.Alias)); err != nil {
			return nil, err
		}
	}
	slices.SortFunc(entries, func(a, b hashEntry) int {
		switch {
		case a.hash < b.hash:
			return -1
		case a.hash > b.hash:
			return 1
		}
		return 0
	})
	return entries, nil
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

func emitFromString(cw *gen.CodeWriter, e enumSpec) error {
	entries, err := e.hashEntries()
	if err != nil {
		return err
	}
	mapName := lowerFirst(e.name) + "Keys"
	cw.Printf("// %s maps the hash of each recognized %s name, canonical\n// or alias, to its value.\n", mapName, e.name)
	cw.Printf("var %s = map[uint32]%s{\n", mapName, e.name)
	for _, entry := range entries {
		cw.Printf("\t0x%08x: %s, // %s\n", entry.hash, entry.ident, entry.key)
	}
	cw.Printf("}\n\n")

	cw.Printf("// %sFromString resolves a %s name. Unrecognized input reports\n// ok == false; it is not an error.\n", e.name, e.name)
	cw.Printf("func %sFromString(s string) (%s, bool) {\n", e.name, e.name)
	cw.Printf("\tv, ok := %s[hashString(s)]\n\treturn v, ok\n}\n\n", mapName)
	return nil
}

// emitDeclarations writes the declarations artifact: the synthesized
// enumerations and, as package documentation, the accessor surface the
// definitions artifact implements.
func emitDeclarations(w io.Writer, m *model, pkg, generatedBy string) error {
	cw := gen.NewCodeWriter()
	cw.Printf("%s", `// The data tables declared here resolve through these accessors,
// defined alongside the tables:
//
//	func LocaleFromString(s string) (Locale, bool)
//	func CalendarFromString(s string) (Calendar, bool)
//	func HourCycleRegionFromString(s string) (HourCycleRegion, bool)
//	func GetRegionalHourCycles(region string) []HourCycle
//	func GetCalendarDateFormat(locale, calendar string) (CalendarFormat, bool)
//	func GetCalendarTimeFormat(locale, calendar string) (CalendarFormat, bool)
//	func GetCalendarDateTimeFormat(locale, calendar string) (CalendarFormat, bool)
//	func GetCalendarAvailableFormats(locale, calendar string) []CalendarPattern

`)
	for _, e := range m.enums() {
		emitEnum(cw, e)
	}
	return cw.WriteGoFile(w, pkg, generatedBy)
}

// emitDefinitions writes the definitions artifact: the interned string
// table, the dense data tables, the hash lookup tables and the
// accessor bodies.
func emitDefinitions(w io.Writer, m *model, pkg, generatedBy string) error {
	cw := gen.NewCodeWriter()

	emitStringTable(cw, m.strings)
	emitTableTypes(cw, m)
	emitCalendarTable(cw, m)
	emitHourCycleTable(cw, m)

	cw.Printf("%s", `// hashString is 32-bit FNV-1a, the hash the generator keyed the
// lookup tables with.
func hashString(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

`)
	for _, e := range m.enums() {
		if err := emitFromString(cw, e); err != nil {
			return err
		}
	}
	cw.Printf("%s", accessorBodies)
	return cw.WriteGoFile(w, pkg, generatedBy)
}

func emitStringTable(cw *gen.CodeWriter, tab *intern.Table) {
	strs := tab.Strings()
	size := 0
	cw.Printf("// stringTable holds every distinct pattern and name, in first-seen\n// order. Index 0 is the empty string.\n")
	cw.Printf("var stringTable = [%d]string{\n", len(strs))
	for _, s := range strs {
		cw.Printf("\t%s,\n", gen.Quote(s))
		size += len(s)
	}
	cw.Printf("}\n\n")
	cw.AddSize(size)
}

func emitTableTypes(cw *gen.CodeWriter, m *model) {
	cw.Printf("// availableFormatsCap is the largest availableFormats count of any\n// locale × calendar pair; every table cell reserves that many slots.\n")
	cw.Printf("const availableFormatsCap = %d\n\n", m.maxAvailableFormats)
	cw.Printf("const hourCyclesCap = %d\n\n", m.maxHourCycles())
	cw.Printf("%s", `// calendarFormat indexes the four verbosity tiers of one format group
// in stringTable.
type calendarFormat struct {
	full, long, medium, short uint16
}

// calendarData is one locale × calendar table cell. A zero calendar
// index marks a cell the input never populated.
type calendarData struct {
	calendar             uint16
	dateFormats          calendarFormat
	timeFormats          calendarFormat
	dateTimeFormats      calendarFormat
	availableFormats     [availableFormatsCap]uint16
	availableFormatsSize uint8
}

// hourCycleRow is one region's permitted hour cycles.
type hourCycleRow struct {
	cycles [hourCyclesCap]HourCycle
	size   uint8
}

`)
}

func emitCalendarTable(cw *gen.CodeWriter, m *model) {
	cw.Printf("// calendarTable is the dense Locale × Calendar rectangle. Rows are\n// indexed by Locale - 1, columns by Calendar.\n")
	cw.Printf("var calendarTable = [%d][%d]calendarData{\n", len(m.localeNames), len(m.calendars))
	for _, key := range m.localeNames {
		loc := m.locales[key]
		cw.Printf("\t{ // %s\n", key)
		for _, name := range m.calendars {
			entry := loc.calendars[name]
			if entry == nil {
				cw.Printf("\t\t{},\n")
				continue
			}
			// Inner literals spell out their types: elision is only
			// valid for array elements, not struct fields.
			cw.Printf("\t\t{%d, %s, %s, %s, [availableFormatsCap]uint16{%s}, %d},\n",
				entry.name,
				formatSetLiteral(entry.dateFormats),
				formatSetLiteral(entry.timeFormats),
				formatSetLiteral(entry.dateTimeFormats),
				idList(entry.availableFormats),
				len(entry.availableFormats))
		}
		cw.Printf("\t},\n")
	}
	cw.Printf("}\n\n")
}

func formatSetLiteral(set formatSet) string {
	return fmt.Sprintf("calendarFormat{%d, %d, %d, %d}", set.full, set.long, set.medium, set.short)
}

func idList(ids []intern.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(uint16(id))
	}
	return strings.Join(parts, ", ")
}

func emitHourCycleTable(cw *gen.CodeWriter, m *model) {
	cw.Printf("// hourCycleTable rows follow the HourCycleRegion order.\n")
	cw.Printf("var hourCycleTable = [%d]hourCycleRow{\n", len(m.hourCycleRegions))
	for _, region := range m.hourCycleRegions {
		cycles := m.hourCycles[region]
		names := make([]string, len(cycles))
		for i, hc := range cycles {
			names[i] = hc.String()
		}
		cw.Printf("\t{[hourCyclesCap]HourCycle{%s}, %d}, // %s\n", strings.Join(names, ", "), len(cycles), region)
	}
	cw.Printf("}\n\n")
}

// accessorBodies is the fixed runtime surface over the emitted tables.
const accessorBodies = `// GetRegionalHourCycles returns the hour cycles permitted in region,
// most preferred first, or nil if the region is unknown.
func GetRegionalHourCycles(region string) []HourCycle {
	r, ok := HourCycleRegionFromString(region)
	if !ok {
		return nil
	}
	row := &hourCycleTable[int(r)]
	out := make([]HourCycle, row.size)
	copy(out, row.cycles[:row.size])
	return out
}

// findCalendarData resolves the table cell for (locale, calendar), or
// nil if either name is unrecognized or the cell was never populated.
func findCalendarData(locale, calendar string) *calendarData {
	loc, ok := LocaleFromString(locale)
	if !ok {
		return nil
	}
	c, ok := CalendarFromString(calendar)
	if !ok {
		return nil
	}
	// The Locale enumeration starts at 1; the table rows start at 0.
	data := &calendarTable[int(loc)-1][int(c)]
	if data.calendar == 0 {
		return nil
	}
	return data
}

func (f calendarFormat) resolve() CalendarFormat {
	return CalendarFormat{
		Full:   CalendarPattern{Pattern: stringTable[f.full]},
		Long:   CalendarPattern{Pattern: stringTable[f.long]},
		Medium: CalendarPattern{Pattern: stringTable[f.medium]},
		Short:  CalendarPattern{Pattern: stringTable[f.short]},
	}
}

// GetCalendarDateFormat returns the date formats of the calendar in
// the given locale.
func GetCalendarDateFormat(locale, calendar string) (CalendarFormat, bool) {
	if data := findCalendarData(locale, calendar); data != nil {
		return data.dateFormats.resolve(), true
	}
	return CalendarFormat{}, false
}

// GetCalendarTimeFormat returns the time formats of the calendar in
// the given locale.
func GetCalendarTimeFormat(locale, calendar string) (CalendarFormat, bool) {
	if data := findCalendarData(locale, calendar); data != nil {
		return data.timeFormats.resolve(), true
	}
	return CalendarFormat{}, false
}

// GetCalendarDateTimeFormat returns the date-time combining formats of
// the calendar in the given locale.
func GetCalendarDateTimeFormat(locale, calendar string) (CalendarFormat, bool) {
	if data := findCalendarData(locale, calendar); data != nil {
		return data.dateTimeFormats.resolve(), true
	}
	return CalendarFormat{}, false
}

// GetCalendarAvailableFormats returns the calendar's additional named
// patterns in the given locale, in source order, or nil if not found.
func GetCalendarAvailableFormats(locale, calendar string) []CalendarPattern {
	data := findCalendarData(locale, calendar)
	if data == nil {
		return nil
	}
	out := make([]CalendarPattern, data.availableFormatsSize)
	for i := range out {
		out[i] = CalendarPattern{Pattern: stringTable[data.availableFormats[i]]}
	}
	return out
}
`
