// SPDX-License-Identifier: MPL-2.0

// Package pipeline runs the one-time setup of a freshly generated project.
//
// A Pipeline is an ordered list of Steps. Each step advances the pipeline to
// its target State; a Fatal step that fails moves it to Failed and stops the
// run, a BestEffort step that fails is logged and the run continues.
package pipeline
