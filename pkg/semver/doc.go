// Package semver provides strict semantic version parsing and total-order
// comparison per semver.org.
//
// # Overview
//
// This package parses version strings of the form
// major.minor.patch[-prerelease][+build] and defines two distinct relations
// over the parsed values:
//
//   - Precedence (Compare and the relational helpers): the semver ordering
//     used for sorting and range checks. Build metadata is ignored and
//     alphanumeric prerelease identifiers compare case-insensitively.
//   - Equality (Equals): strict identity across all five fields, including
//     build metadata and letter case.
//
// The two relations intentionally disagree: "1.0.0+a" and "1.0.0+b" have
// equal precedence but are not equal. Do not substitute one for the other.
//
// # Grammar
//
// The parser accepts exactly the anchored grammar below and nothing else;
// a "v" prefix, surrounding whitespace, or a partial core all fail:
//
//	version      := core ("-" prerelease)? ("+" build)?
//	core         := digits "." digits "." digits
//	digits       := "0" | [1-9][0-9]*
//	prerelease   := pre_id ("." pre_id)*
//	pre_id       := digits | alphanumeric with at least one non-digit
//	build        := build_id ("." build_id)*
//	build_id     := [-0-9A-Za-z]+
//
// Major, minor and patch must additionally fit in the native int; a
// grammar-valid digit run beyond that range fails with *ParseError rather
// than truncating. Numeric prerelease identifiers carry no such limit
// because they are compared as digit strings, never converted.
//
// # Usage
//
// Parse and compare two versions:
//
//	a, err := semver.Parse("1.0.0-alpha.1")
//	if err != nil {
//	    // Handle *semver.ParseError
//	}
//	b := semver.MustParse("1.0.0")
//	if a.LessThan(b) {
//	    fmt.Println("prerelease precedes the release")
//	}
//
// Sort a slice by precedence:
//
//	semver.Sort(versions)
//
// # Error Handling
//
// Parse has a single failure mode: *ParseError, carrying the offending
// input string. Once two Versions exist, Compare and Equals are total and
// never fail.
//
// # Concurrency
//
// Versions are immutable after construction. Parsing and comparing from
// any number of goroutines requires no synchronization.
package semver
