// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clopts

import "slices"

// Rule lets either of two options satisfy the other's required check.
type Rule struct {
	A, B string
}

// relax applies rules to missing, in order, exactly once each. A rule whose
// options are both missing leaves both missing; when only one is missing it
// is dropped. Rules are not chained: dropping an option never re-triggers an
// earlier rule.
func relax(missing []string, rules []Rule) []string {
	out := slices.Clone(missing)
	for _, r := range rules {
		a := slices.Contains(out, r.A)
		b := slices.Contains(out, r.B)
		switch {
		case a && b:
			// still failing
		case a:
			out = slices.DeleteFunc(out, func(n string) bool { return n == r.A })
		case b:
			out = slices.DeleteFunc(out, func(n string) bool { return n == r.B })
		}
	}
	return out
}
