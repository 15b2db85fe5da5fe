// SPDX-License-Identifier: MPL-2.0

// Package report defines the logging capability handed to each setup stage.
//
// Stages never reach for a process-wide logger; the driver creates one
// Reporter per run and passes it down. *log.Logger from charmbracelet/log
// satisfies the interface directly.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Prefix labels every line emitted by the run logger.
const Prefix = "postgen"

type (
	// Reporter is the structured logging surface used by the pipeline stages.
	// keyvals are alternating key/value pairs, as in charmbracelet/log.
	Reporter interface {
		Debug(msg any, keyvals ...any)
		Info(msg any, keyvals ...any)
		Warn(msg any, keyvals ...any)
		Error(msg any, keyvals ...any)
	}

	// Entry is a single message captured by a Recorder.
	Entry struct {
		Level   log.Level
		Message string
		KeyVals []any
	}

	// Recorder is a Reporter that keeps every entry in memory. Tests use it
	// to assert on warnings and best-effort failures.
	Recorder struct {
		mu      sync.Mutex
		entries []Entry
	}

	discard struct{}
)

// New returns the run logger writing to w. Debug output is enabled when verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// Discard returns a Reporter that drops everything.
func Discard() Reporter { return discard{} }

func (discard) Debug(any, ...any) {}
func (discard) Info(any, ...any)  {}
func (discard) Warn(any, ...any)  {}
func (discard) Error(any, ...any) {}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Debug records a debug entry.
func (r *Recorder) Debug(msg any, keyvals ...any) { r.record(log.DebugLevel, msg, keyvals) }

// Info records an info entry.
func (r *Recorder) Info(msg any, keyvals ...any) { r.record(log.InfoLevel, msg, keyvals) }

// Warn records a warning entry.
func (r *Recorder) Warn(msg any, keyvals ...any) { r.record(log.WarnLevel, msg, keyvals) }

// Error records an error entry.
func (r *Recorder) Error(msg any, keyvals ...any) { r.record(log.ErrorLevel, msg, keyvals) }

// Entries returns a copy of all recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// At returns the recorded entries of the given level.
func (r *Recorder) At(level log.Level) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry at level has a message containing substr.
func (r *Recorder) Contains(level log.Level, substr string) bool {
	for _, e := range r.At(level) {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func (r *Recorder) record(level log.Level, msg any, keyvals []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Level:   level,
		Message: fmt.Sprint(msg),
		KeyVals: keyvals,
	})
}
