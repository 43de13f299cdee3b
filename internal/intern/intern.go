// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intern deduplicates strings into an insertion-ordered table
// addressed by small integer indices. The table is the backing store
// for every pattern and name string the generated data files refer to.
package intern

import "fmt"

// An ID is an index into a Table. ID 0 always refers to the empty
// string, so a zero-valued record is distinguishable from one that was
// populated from input data.
type ID uint16

// maxID bounds a table at the capacity of its index type.
const maxID = 1<<16 - 1

// A Table assigns each distinct string a stable ID in first-interned
// order. Equal strings always resolve to the same ID.
type Table struct {
	ids    map[string]ID
	list   []string
	frozen bool
}

// NewTable returns an empty table, pre-seeded with the empty string at
// ID 0.
func NewTable() *Table {
	t := &Table{ids: make(map[string]ID, 256)}
	t.list = append(t.list, "")
	t.ids[""] = 0
	return t
}

// Intern returns the ID of s, assigning the next free ID if s has not
// been seen before. Interning a new string after Freeze panics: by
// then the table layout is being emitted and may not change.
func (t *Table) Intern(s string) ID {
	if id, ok := t.ids[s]; ok {
		return id
	}
	if t.frozen {
		panic(fmt.Sprintf("intern: Intern(%q) after Freeze", s))
	}
	if len(t.list) > maxID {
		panic("intern: table overflows index type")
	}
	id := ID(len(t.list))
	t.list = append(t.list, s)
	t.ids[s] = id
	return id
}

// Lookup returns the string interned under id.
func (t *Table) Lookup(id ID) string {
	return t.list[id]
}

// Len returns the number of interned strings, including the reserved
// empty string.
func (t *Table) Len() int {
	return len(t.list)
}

// Freeze marks the end of the build phase. Lookups remain valid;
// further interning of unseen strings panics.
func (t *Table) Freeze() {
	t.frozen = true
}

// Strings returns the table contents in ID order. The caller must not
// modify the returned slice.
func (t *Table) Strings() []string {
	return t.list
}
