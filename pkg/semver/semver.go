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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Grammar building blocks. The pattern is anchored at both ends: no
// surrounding whitespace, no "v" prefix, no partial cores.
const (
	// Only digits, with no leading zeros.
	reDigits = `0|[1-9][0-9]*`
	// Digits, letters and dashes.
	reAlphaNum = `[-0-9A-Za-z]+`
	// Alphanumeric identifier that contains at least one non-digit
	// (an all-digit identifier is numeric, not alphanumeric).
	reStrictAlphaNum = `[-0-9A-Za-z]*[-A-Za-z][-0-9A-Za-z]*`
)

var versionRE = regexp.MustCompile(
	`^(?P<major>` + reDigits + `)` +
		`\.(?P<minor>` + reDigits + `)` +
		`\.(?P<patch>` + reDigits + `)` +
		`(?:-(?P<prerelease>(?:` + reDigits + `|` + reStrictAlphaNum + `)` +
		`(?:\.(?:` + reDigits + `|` + reStrictAlphaNum + `))*))?` +
		`(?:\+(?P<build>` + reAlphaNum + `(?:\.` + reAlphaNum + `)*))?$`,
)

// ParseError reports a string that failed to parse as a semantic version.
// It carries the original input for diagnostics.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("not a valid semantic version: %q", e.Input)
}

// Version represents a parsed semantic version of the form
// major.minor.patch[-prerelease][+build].
//
// A Version is created only by a successful Parse and is immutable after
// construction. Prerelease and build identifiers are retained as raw
// strings; whether a prerelease identifier is treated numerically or
// lexically is decided at comparison time, not at parse time.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Prerelease holds the dot-separated prerelease identifiers,
	// e.g. ["alpha", "1"] for "1.0.0-alpha.1". Empty means no prerelease.
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build holds the dot-separated build metadata identifiers.
	// Build metadata never participates in ordering.
	Build []string `json:"build,omitempty" yaml:"build,omitempty"`
}

// Parse parses a version string into a Version.
// The grammar is strict: all three core components are required, numeric
// components must not carry leading zeros, and prerelease/build identifiers
// are limited to digits, letters and dashes. Core components must also fit
// in the native int. Returns *ParseError on any input that does not match;
// no partial result is ever returned.
func Parse(s string) (Version, error) {
	m := versionRE.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &ParseError{Input: s}
	}

	var v Version
	for i, name := range versionRE.SubexpNames() {
		var err error
		switch name {
		case "major":
			v.Major, err = coreComponent(s, m[i])
		case "minor":
			v.Minor, err = coreComponent(s, m[i])
		case "patch":
			v.Patch, err = coreComponent(s, m[i])
		case "prerelease":
			if m[i] != "" {
				v.Prerelease = strings.Split(m[i], ".")
			}
		case "build":
			if m[i] != "" {
				v.Build = strings.Split(m[i], ".")
			}
		}
		if err != nil {
			return Version{}, err
		}
	}
	return v, nil
}

// coreComponent converts a digit group already validated by the grammar.
// The grammar admits digit runs of any length, so a component can still
// overflow the int range; such input is rejected rather than truncated.
func coreComponent(input, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &ParseError{Input: input}
	}
	return n, nil
}

// MustParse parses a version string and panics if parsing fails.
//
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the canonical string form of the version, including the
// prerelease and build components when present.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Prerelease, "."))
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.Build, "."))
	}
	return b.String()
}
