// SPDX-License-Identifier: MPL-2.0

package stamp

import (
	"context"
	"errors"
	"testing"

	"postgen-cli/internal/report"
	"postgen-cli/internal/toolexec"
	"postgen-cli/internal/toolexec/toolexectest"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Version
	}{
		{input: "3.12", want: Version{3, 12}},
		{input: "3.12.4", want: Version{3, 12}},
		{input: "v3.11", want: Version{3, 11}},
		{input: "Python 3.13.1\n", want: Version{3, 13}},
		{input: "3.14.0rc1", want: Version{3, 14}},
		{input: " 3.9 ", want: Version{3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseVersion(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Errorf("String() = %q, want %q", got.String(), tt.want.String())
			}
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "3", "python", "latest", "Python"} {
		if _, err := ParseVersion(input); !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("ParseVersion(%q) error = %v, want ErrInvalidVersion", input, err)
		}
	}
}

func TestResolveVersion_Configured(t *testing.T) {
	t.Parallel()

	runner := toolexectest.NewRunner()
	inv := toolexec.NewInvoker(runner, report.Discard())

	v, err := ResolveVersion(context.Background(), inv, "3.13")
	if err != nil {
		t.Fatalf("ResolveVersion returned error: %v", err)
	}
	if v != (Version{3, 13}) {
		t.Errorf("version = %v, want 3.13", v)
	}
	if len(runner.Calls()) != 0 {
		t.Errorf("configured version should not probe interpreters, calls = %v", runner.CommandLines())
	}
}

func TestResolveVersion_ProbesInterpreters(t *testing.T) {
	t.Parallel()

	runner := toolexectest.NewRunner().
		Missing("python3").
		On("python --version", toolexectest.Response{Stdout: "Python 3.12.7\n"})
	inv := toolexec.NewInvoker(runner, report.Discard())

	v, err := ResolveVersion(context.Background(), inv, "")
	if err != nil {
		t.Fatalf("ResolveVersion returned error: %v", err)
	}
	if v != (Version{3, 12}) {
		t.Errorf("version = %v, want 3.12", v)
	}
}

func TestResolveVersion_NoInterpreter(t *testing.T) {
	t.Parallel()

	runner := toolexectest.NewRunner().Missing("python3").Missing("python")
	inv := toolexec.NewInvoker(runner, report.Discard())

	_, err := ResolveVersion(context.Background(), inv, "")
	if !errors.Is(err, toolexec.ErrToolMissing) {
		t.Errorf("error = %v, want ErrToolMissing", err)
	}
}
