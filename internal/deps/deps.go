// SPDX-License-Identifier: MPL-2.0

package deps

import (
	"strings"
)

const (
	// AnyVersion is the constraint used when a token carries no '@' part.
	AnyVersion = "*"

	separator = "@"
)

// Spec is a single parsed dependency.
type Spec struct {
	Name       string
	Constraint string
}

// String renders the spec as a manifest line without the trailing newline.
func (s Spec) String() string {
	return s.Name + ` = "` + s.Constraint + `"`
}

// ParseOne parses a single "name" or "name@constraint" token.
func ParseOne(token string) (Spec, error) {
	if token == "" {
		return Spec{}, &InvalidDependencyError{}
	}

	parts := strings.Split(token, separator)
	switch len(parts) {
	case 1:
		return Spec{Name: parts[0], Constraint: AnyVersion}, nil
	case 2:
		return Spec{Name: parts[0], Constraint: parts[1]}, nil
	default:
		return Spec{}, &InvalidDependencyError{Token: token}
	}
}

// ParseList parses a whitespace-separated list of tokens in order.
// Blank input yields an empty list. The first invalid token fails the whole
// list and no specs are returned.
func ParseList(text string) ([]Spec, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	specs := make([]Spec, 0, len(tokens))
	for _, token := range tokens {
		spec, err := ParseOne(token)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Render joins the specs one per line, each line newline-terminated.
// An empty list renders to the empty string.
func Render(specs []Spec) string {
	if len(specs) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, spec := range specs {
		sb.WriteString(spec.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compile parses text and renders the resulting block.
func Compile(text string) (string, error) {
	specs, err := ParseList(text)
	if err != nil {
		return "", err
	}
	return Render(specs), nil
}
