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
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2.3")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("1.0.0-alpha")
	f.Add("1.0.0-alpha.1")
	f.Add("1.0.0-0.3.7")
	f.Add("1.0.0-x-y-z.--1")
	f.Add("1.2.3+build.42")
	f.Add("1.2.3-rc.1+exp.sha.5114f85")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.2")
	f.Add("1.2.3.4")
	f.Add("01.2.3")
	f.Add("1.2.3-")
	f.Add("1.2.3+")
	f.Add("1.2.3-01")
	f.Add("1.2.3-alpha..1")
	f.Add("v1.2.3")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("a.b.c")
	f.Add("-1.2.3")
	f.Add("99999999999999999999.0.0")
	f.Add("1.0.0-99999999999999999999")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)
		if err != nil {
			return
		}

		// Accepted input must round-trip through the canonical string form.
		s := v.String()
		v2, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) succeeded but its String() %q does not re-parse: %v", input, s, err)
		}
		if !v.Equals(v2) {
			t.Errorf("round-trip of %q not strictly equal: %+v vs %+v", input, v, v2)
		}

		// Reflexivity of both relations.
		if v.Compare(v2) != 0 {
			t.Errorf("Compare of %q against its round-trip is not 0", input)
		}
		if !v.Equals(v) {
			t.Errorf("Equals(%q, itself) = false", input)
		}

		// Accepted components must be non-negative and identifiers non-empty.
		if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
			t.Errorf("Parse(%q) produced negative component: %+v", input, v)
		}
		for _, id := range v.Prerelease {
			if id == "" {
				t.Errorf("Parse(%q) produced empty prerelease identifier", input)
			}
		}
		for _, id := range v.Build {
			if id == "" {
				t.Errorf("Parse(%q) produced empty build identifier", input)
			}
		}
	})
}
