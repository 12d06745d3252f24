// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"sort"
	"strings"
)

// Compare returns an integer comparing two versions by precedence:
// -1 if v < other, 0 if v == other, 1 if v > other.
//
// The core triple is compared numerically. When the triples are equal,
// prerelease identifiers decide: a version without a prerelease outranks
// one that has it, numeric identifiers compare numerically, alphanumeric
// identifiers compare case-insensitively, and a numeric identifier is
// always lower precedence than an alphanumeric one at the same position.
// Build metadata never participates, so Compare returning 0 does not
// imply Equals; use Equals for strict identity.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return comparePrerelease(v.Prerelease, other.Prerelease)
}

// Equals returns true if v exactly equals other: all five fields match,
// including build metadata and including letter case of identifiers.
// This is a stricter relation than Compare returning 0 and is deliberately
// not derived from it.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		equalIdentifiers(v.Prerelease, other.Prerelease) &&
		equalIdentifiers(v.Build, other.Build)
}

// LessThan returns true if v has lower precedence than other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan returns true if v has higher precedence than other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// LessOrEqual returns true if v does not have higher precedence than other.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// GreaterOrEqual returns true if v does not have lower precedence than other.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// Sort sorts versions in place in ascending precedence order.
// The sort is stable so versions that compare equal (for example two
// versions differing only in build metadata) keep their relative order.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease compares two prerelease identifier sequences.
// No prerelease outranks any prerelease.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}

	// All shared positions equal: the strict prefix has lower precedence.
	return compareInt(len(a), len(b))
}

// compareIdentifier compares a single pair of prerelease identifiers.
func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		return compareNumeric(a, b)
	case aNum:
		// Numeric identifiers always have lower precedence than
		// alphanumeric ones, regardless of magnitude.
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// isNumeric reports whether the identifier consists only of digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareNumeric compares two all-digit identifiers by numeric value.
// The grammar forbids leading zeros, so the longer digit run is always
// the larger number and equal-length runs compare bytewise. This avoids
// overflow on identifiers beyond the int range.
func compareNumeric(a, b string) int {
	if c := compareInt(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func equalIdentifiers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
