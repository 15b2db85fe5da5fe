// SPDX-License-Identifier: MPL-2.0

// Package deps compiles the template's dependency shorthand into pixi manifest syntax.
//
// A dependency list is a whitespace-separated sequence of tokens, each either
// "name" or "name@constraint". Every token renders as one `name = "constraint"`
// line, with "*" as the constraint when none was given:
//
//	pytest matplotlib@>=3.7.2  ->  pytest = "*"
//	                               matplotlib = ">=3.7.2"
//
// The package performs no I/O; splicing the result into a file is the job of
// package manifest.
package deps
