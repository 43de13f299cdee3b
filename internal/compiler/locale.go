// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale directory name to
// language[-script][-region], dropping variant subtags, so that input
// trees differing only by variant (en-US and en-US-POSIX) collapse
// onto one locale record. A tag that does not parse aborts the build.
func normalizeLocale(name string) (string, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return "", fmt.Errorf("locale %q: %w", name, err)
	}
	// Raw reports only the subtags present in the input; it does not
	// infer a likely script or region.
	base, script, region := tag.Raw()

	var sb strings.Builder
	sb.WriteString(base.String())
	if s := script.String(); s != "Zzzz" {
		sb.WriteByte('-')
		sb.WriteString(s)
	}
	if r := region.String(); r != "ZZ" {
		sb.WriteByte('-')
		sb.WriteString(r)
	}
	return sb.String(), nil
}
