// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The CLDR JSON documents are walked with the token decoder where
// member order is load-bearing: the availableFormats sequence, the
// global calendar list and the hour-cycle region list all follow
// document order, which decoding into a Go map would destroy.

// walkObject calls fn for each member of the JSON object in raw, in
// document order. A duplicated key is visited once per occurrence.
func walkObject(raw json.RawMessage, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parse object: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("parse object: got %v; want object", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("parse object key: got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("parse member %q: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("parse object: %w", err)
	}
	return nil
}

// member returns the named member of the JSON object in raw. A missing
// member is an input error: the build has no degraded mode.
func member(raw json.RawMessage, name string) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("parse object: %w", err)
	}
	value, ok := obj[name]
	if !ok {
		return nil, fmt.Errorf("missing %q member", name)
	}
	return value, nil
}

// stringMember returns the named member of raw, which must hold a
// JSON string.
func stringMember(raw json.RawMessage, name string) (string, error) {
	value, err := member(raw, name)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("member %q: %w", name, err)
	}
	return s, nil
}
