// SPDX-License-Identifier: MPL-2.0

package deps

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParseOne(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  Spec
	}{
		{name: "bare name", token: "pytest", want: Spec{Name: "pytest", Constraint: "*"}},
		{name: "lower bound", token: "matplotlib@>=3.7.2", want: Spec{Name: "matplotlib", Constraint: ">=3.7.2"}},
		{name: "wildcard minor", token: "more-itertools@10.*", want: Spec{Name: "more-itertools", Constraint: "10.*"}},
		{name: "compatible release", token: "matplotlib@~3.7", want: Spec{Name: "matplotlib", Constraint: "~3.7"}},
		{name: "exclusion", token: "black@!=1.2.3", want: Spec{Name: "black", Constraint: "!=1.2.3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOne(tt.token)
			if err != nil {
				t.Fatalf("ParseOne(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseOne(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseOne_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{name: "blank", token: "", wantMsg: "blank dependency"},
		{name: "two separators", token: "hello@1.2.3@v40", wantMsg: "hello@1.2.3@v40"},
		{name: "three separators", token: "a@b@c@d", wantMsg: "a@b@c@d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseOne(tt.token)
			if err == nil {
				t.Fatalf("ParseOne(%q) expected error", tt.token)
			}
			if !errors.Is(err, ErrInvalidDependency) {
				t.Errorf("error does not wrap ErrInvalidDependency: %v", err)
			}
			var depErr *InvalidDependencyError
			if !errors.As(err, &depErr) {
				t.Fatalf("error type = %T, want *InvalidDependencyError", err)
			}
			if depErr.Token != tt.token {
				t.Errorf("Token = %q, want %q", depErr.Token, tt.token)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseOne_BareNameGetsWildcard(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"numpy", "a", "scikit-learn", "zope.interface", "x_y_z"} {
		got, err := ParseOne(name)
		if err != nil {
			t.Fatalf("ParseOne(%q) returned error: %v", name, err)
		}
		if got.Name != name || got.Constraint != AnyVersion {
			t.Errorf("ParseOne(%q) = %+v, want {%s *}", name, got, name)
		}
	}
}

func TestParseList_Blank(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", " ", "   ", "\t\n "} {
		specs, err := ParseList(input)
		if err != nil {
			t.Errorf("ParseList(%q) returned error: %v", input, err)
		}
		if len(specs) != 0 {
			t.Errorf("ParseList(%q) = %v, want empty", input, specs)
		}
		if got := Render(specs); got != "" {
			t.Errorf("Render(ParseList(%q)) = %q, want empty string", input, got)
		}
	}
}

func TestParseList_PreservesOrder(t *testing.T) {
	t.Parallel()

	specs, err := ParseList("  zlib  abc@1  mno@>2 ")
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	if want := []string{"zlib", "abc", "mno"}; !slices.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestParseList_FailsOnFirstInvalidToken(t *testing.T) {
	t.Parallel()

	specs, err := ParseList("pytest bad@1@2 worse@3@4")
	if err == nil {
		t.Fatal("expected error for invalid token")
	}
	if specs != nil {
		t.Errorf("expected no partial result, got %v", specs)
	}
	var depErr *InvalidDependencyError
	if !errors.As(err, &depErr) || depErr.Token != "bad@1@2" {
		t.Errorf("error = %v, want InvalidDependencyError for bad@1@2", err)
	}
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mixed constraints",
			input: "pytest matplotlib@>=3.7.2 more-itertools@10.*",
			want:  "pytest = \"*\"\nmatplotlib = \">=3.7.2\"\nmore-itertools = \"10.*\"\n",
		},
		{
			name:  "operators",
			input: "pytest matplotlib@~3.7 black@!=1.2.3",
			want:  "pytest = \"*\"\nmatplotlib = \"~3.7\"\nblack = \"!=1.2.3\"\n",
		},
		{name: "single", input: "ruff", want: "ruff = \"*\"\n"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Compile(tt.input)
			if err != nil {
				t.Fatalf("Compile(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Compile(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	t.Parallel()

	got, err := Compile("ok hello@1.2.3@v40")
	if err == nil {
		t.Fatal("expected error")
	}
	if got != "" {
		t.Errorf("Compile returned partial output %q", got)
	}
}
