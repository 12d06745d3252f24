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

func TestCompareCore(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"patch less", "1.2.3", "1.2.4", -1},
		{"major beats minor and patch", "2.0.0", "1.9.9", 1},
		{"minor less", "1.2.0", "1.3.0", -1},
		{"identical cores", "1.2.3", "1.2.3", 0},
		{"numeric not lexical core", "1.10.0", "1.9.0", 1},
		{"build ignored", "1.0.0+build1", "1.0.0+build2", 0},
		{"build ignored against bare core", "1.0.0+build1", "1.0.0", 0},
		{"prerelease below release", "1.0.0-rc.1", "1.0.0", -1},
		{"release above prerelease", "1.0.0", "1.0.0-rc.1", 1},
		{"numeric prerelease compared numerically", "1.0.0-alpha.9", "1.0.0-alpha.10", -1},
		{"numeric below alphanumeric", "1.0.0-99999", "1.0.0-alpha", -1},
		{"prefix has lower precedence", "1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"case insensitive prerelease precedence", "1.0.0-RC.1", "1.0.0-rc.1", 0},
		{"case insensitive ordering", "1.0.0-ALPHA", "1.0.0-beta", -1},
		{"identical prerelease", "1.0.0-rc.1", "1.0.0-rc.1", 0},
		{"huge numeric identifiers", "1.0.0-123456789012345678901234567890", "1.0.0-99999999999999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse(tt.a)
			b := MustParse(tt.b)

			if got := a.Compare(b); got != tt.expected {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			// Antisymmetry: comparing the other way inverts the sign.
			if got := b.Compare(a); got != -tt.expected {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

// TestPrecedenceChain checks the canonical ordering example from semver.org:
// each entry is strictly less than every later entry.
func TestPrecedenceChain(t *testing.T) {
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}

	for i := 0; i < len(chain); i++ {
		for j := i + 1; j < len(chain); j++ {
			a := MustParse(chain[i])
			b := MustParse(chain[j])
			if !a.LessThan(b) {
				t.Errorf("expected %q < %q", chain[i], chain[j])
			}
			if !b.GreaterThan(a) {
				t.Errorf("expected %q > %q", chain[j], chain[i])
			}
		}
	}
}

func TestRelationalOperators(t *testing.T) {
	lo := MustParse("1.2.3")
	hi := MustParse("1.2.4")

	if !lo.LessThan(hi) || lo.GreaterThan(hi) {
		t.Error("LessThan/GreaterThan disagree with Compare")
	}
	if !lo.LessOrEqual(hi) || !lo.LessOrEqual(lo) {
		t.Error("LessOrEqual disagrees with Compare")
	}
	if !hi.GreaterOrEqual(lo) || !hi.GreaterOrEqual(hi) {
		t.Error("GreaterOrEqual disagrees with Compare")
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{"identical strings", "1.2.3-rc.1+b.1", "1.2.3-rc.1+b.1", true},
		{"core only", "1.2.3", "1.2.3", true},
		{"different build not equal", "1.0.0+build1", "1.0.0+build2", false},
		{"build presence not equal", "1.0.0+build1", "1.0.0", false},
		{"prerelease case not equal", "1.0.0-RC.1", "1.0.0-rc.1", false},
		{"build case not equal", "1.0.0+SHA", "1.0.0+sha", false},
		{"different core", "1.2.3", "1.2.4", false},
		{"different prerelease length", "1.0.0-rc", "1.0.0-rc.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse(tt.a)
			b := MustParse(tt.b)
			if got := a.Equals(b); got != tt.expected {
				t.Errorf("Equals(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
			if got := b.Equals(a); got != tt.expected {
				t.Errorf("Equals(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

// TestCompareEqualsAsymmetry pins the deliberate divergence between the two
// relations: equal precedence does not imply strict equality.
func TestCompareEqualsAsymmetry(t *testing.T) {
	pairs := [][2]string{
		{"1.0.0+build1", "1.0.0+build2"},
		{"1.0.0-RC.1", "1.0.0-rc.1"},
		{"1.0.0+anything", "1.0.0"},
	}

	for _, p := range pairs {
		a := MustParse(p[0])
		b := MustParse(p[1])
		if a.Compare(b) != 0 {
			t.Errorf("Compare(%q, %q) != 0", p[0], p[1])
		}
		if a.Equals(b) {
			t.Errorf("Equals(%q, %q) = true, want false", p[0], p[1])
		}
	}
}

func TestCompareTotality(t *testing.T) {
	corpus := []string{
		"0.0.0", "0.0.1", "0.1.0", "1.0.0", "2.0.0", "2.1.2",
		"1.0.0-alpha", "1.0.0-alpha.1", "1.0.0-alpha.beta",
		"1.0.0-beta.2", "1.0.0-beta.11", "1.0.0-rc.1",
		"1.0.0+build.1", "1.0.0-rc.1+build.2", "1.0.0-RC.1",
	}

	for _, sa := range corpus {
		for _, sb := range corpus {
			a := MustParse(sa)
			b := MustParse(sb)
			c := a.Compare(b)
			if c < -1 || c > 1 {
				t.Fatalf("Compare(%q, %q) = %d, outside {-1,0,1}", sa, sb, c)
			}
			if inv := b.Compare(a); inv != -c {
				t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", sa, sb, c, sb, sa, inv)
			}
		}
	}
}

func TestSort(t *testing.T) {
	versions := []Version{
		MustParse("1.0.0"),
		MustParse("1.0.0-rc.1"),
		MustParse("0.9.9"),
		MustParse("1.0.0-alpha"),
		MustParse("2.0.0"),
		MustParse("1.0.0-beta.11"),
		MustParse("1.0.0-beta.2"),
	}

	Sort(versions)

	expected := []string{
		"0.9.9",
		"1.0.0-alpha",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"2.0.0",
	}
	for i, want := range expected {
		if got := versions[i].String(); got != want {
			t.Errorf("Sort[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestSortStableOnEqualPrecedence(t *testing.T) {
	versions := []Version{
		MustParse("1.0.0+first"),
		MustParse("1.0.0+second"),
		MustParse("1.0.0+third"),
	}

	Sort(versions)

	expected := []string{"1.0.0+first", "1.0.0+second", "1.0.0+third"}
	for i, want := range expected {
		if got := versions[i].String(); got != want {
			t.Errorf("Sort[%d] = %q, want %q (stable order not preserved)", i, got, want)
		}
	}
}
