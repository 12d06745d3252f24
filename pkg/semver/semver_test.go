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
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Version
		expectedError bool
	}{
		{
			name:     "core only",
			input:    "1.2.3",
			expected: Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:     "all zeros",
			input:    "0.0.0",
			expected: Version{Major: 0, Minor: 0, Patch: 0},
		},
		{
			name:     "multi digit components",
			input:    "11.22.33",
			expected: Version{Major: 11, Minor: 22, Patch: 33},
		},
		{
			name:     "single prerelease identifier",
			input:    "1.0.0-alpha",
			expected: Version{Major: 1, Minor: 0, Patch: 0, Prerelease: []string{"alpha"}},
		},
		{
			name:     "numeric and alphanumeric prerelease identifiers",
			input:    "1.0.0-alpha.1",
			expected: Version{Major: 1, Minor: 0, Patch: 0, Prerelease: []string{"alpha", "1"}},
		},
		{
			name:     "prerelease with dashes",
			input:    "1.0.0-x-y-z.--1",
			expected: Version{Major: 1, Minor: 0, Patch: 0, Prerelease: []string{"x-y-z", "--1"}},
		},
		{
			name:     "numeric zero prerelease identifier",
			input:    "1.0.0-0.3.7",
			expected: Version{Major: 1, Minor: 0, Patch: 0, Prerelease: []string{"0", "3", "7"}},
		},
		{
			name:     "build metadata only",
			input:    "1.2.3+build.42",
			expected: Version{Major: 1, Minor: 2, Patch: 3, Build: []string{"build", "42"}},
		},
		{
			name:  "prerelease and build",
			input: "1.2.3-rc.1+exp.sha.5114f85",
			expected: Version{
				Major: 1, Minor: 2, Patch: 3,
				Prerelease: []string{"rc", "1"},
				Build:      []string{"exp", "sha", "5114f85"},
			},
		},
		{
			name:     "build identifier with leading zeros allowed",
			input:    "1.2.3+001",
			expected: Version{Major: 1, Minor: 2, Patch: 3, Build: []string{"001"}},
		},
		{
			name:          "missing patch",
			input:         "1.2",
			expectedError: true,
		},
		{
			name:          "leading zero in major",
			input:         "01.2.3",
			expectedError: true,
		},
		{
			name:          "leading zero in patch",
			input:         "1.2.03",
			expectedError: true,
		},
		{
			name:          "empty prerelease",
			input:         "1.2.3-",
			expectedError: true,
		},
		{
			name:          "empty build",
			input:         "1.2.3+",
			expectedError: true,
		},
		{
			name:          "empty string",
			input:         "",
			expectedError: true,
		},
		{
			name:          "v prefix not tolerated",
			input:         "v1.2.3",
			expectedError: true,
		},
		{
			name:          "surrounding whitespace",
			input:         " 1.2.3",
			expectedError: true,
		},
		{
			name:          "trailing whitespace",
			input:         "1.2.3 ",
			expectedError: true,
		},
		{
			name:          "too many core components",
			input:         "1.2.3.4",
			expectedError: true,
		},
		{
			name:          "non numeric core",
			input:         "a.b.c",
			expectedError: true,
		},
		{
			name:          "negative component",
			input:         "1.-2.3",
			expectedError: true,
		},
		{
			name:          "leading zero in numeric prerelease identifier",
			input:         "1.2.3-01",
			expectedError: true,
		},
		{
			name:          "empty prerelease identifier",
			input:         "1.2.3-alpha..1",
			expectedError: true,
		},
		{
			name:          "empty build identifier",
			input:         "1.2.3+build..1",
			expectedError: true,
		},
		{
			name:          "illegal character in prerelease",
			input:         "1.2.3-alpha_1",
			expectedError: true,
		},
		{
			name:          "illegal character in build",
			input:         "1.2.3+bui ld",
			expectedError: true,
		},
		{
			name:          "major beyond int range",
			input:         "99999999999999999999.0.0",
			expectedError: true,
		},
		{
			name:          "patch beyond int range",
			input:         "1.0.123456789012345678901234567890",
			expectedError: true,
		},
		{
			name:  "huge numeric prerelease identifier stays a string",
			input: "1.0.0-99999999999999999999",
			expected: Version{
				Major: 1, Minor: 0, Patch: 0,
				Prerelease: []string{"99999999999999999999"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.input, v)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.input, err)
				}
				if perr.Input != tt.input {
					t.Errorf("ParseError.Input = %q, want %q", perr.Input, tt.input)
				}
				if !strings.Contains(perr.Error(), tt.input) {
					t.Errorf("ParseError message %q does not name the offending input", perr.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(v, tt.expected) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, v, tt.expected)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"0.0.0",
		"1.2.3",
		"10.20.30",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-0.3.7",
		"1.0.0-x-y-z.--1",
		"1.2.3+build.42",
		"1.2.3-rc.1+exp.sha.5114f85",
	}

	for _, in := range inputs {
		v, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		if got := v.String(); got != in {
			t.Errorf("Parse(%q).String() = %q, want round-trip", in, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	v := MustParse("1.2.3-rc.1")
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("MustParse returned unexpected core: %+v", v)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse with invalid input did not panic")
		}
	}()
	MustParse("not-a-version")
}
