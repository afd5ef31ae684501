package gen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dnut/object-safe/internal/set"
)

// Parse parses a comma separated list of target type descriptors:
//
//	interface Shape,
//	Holder,
//	Pair[T] where [T: objectsafe.HashObject],
//	interface Registry[T] where [T],
//
// A plain name is a concrete struct target. The interface keyword marks a
// dynamically dispatched interface target. Generic targets carry a type
// parameter list; an optional where clause re-lists the parameters with
// their bounds. A parameter without a bound defaults to any.
func Parse(input string) ([]Descriptor, error) {
	var descriptors []Descriptor
	var seen set.Set[string]

	for _, part := range splitTopLevel(input) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		descriptor, err := parseDescriptor(part)
		if err != nil {
			return nil, err
		}

		if !seen.Insert(descriptor.Name) {
			return nil, fmt.Errorf("duplicate target %q", descriptor.Name)
		}

		descriptors = append(descriptors, descriptor)
	}

	if len(descriptors) == 0 {
		return nil, fmt.Errorf("no targets given")
	}

	return descriptors, nil
}

// splitTopLevel splits the input on commas that are not nested within
// brackets.
func splitTopLevel(input string) []string {
	var parts []string
	var depth, start int

	for idx, r := range input {
		switch r {
		case '[':
			depth += 1
		case ']':
			depth -= 1
		case ',':
			if depth == 0 {
				parts = append(parts, input[start:idx])
				start = idx + 1
			}
		}
	}

	return append(parts, input[start:])
}

func parseDescriptor(input string) (Descriptor, error) {
	var descriptor Descriptor

	if rest, ok := strings.CutPrefix(input, "interface "); ok {
		descriptor.Interface = true
		input = strings.TrimSpace(rest)
	}

	typeExpr, whereClause, hasWhere := strings.Cut(input, " where ")

	name, paramNames, err := parseTypeExpr(strings.TrimSpace(typeExpr))
	if err != nil {
		return descriptor, err
	}

	descriptor.Name = name

	for _, paramName := range paramNames {
		descriptor.Params = append(descriptor.Params, Param{Name: paramName})
	}

	if hasWhere {
		params, err := parseWhereClause(strings.TrimSpace(whereClause))
		if err != nil {
			return descriptor, fmt.Errorf("target %q: %w", name, err)
		}

		if len(params) != len(paramNames) {
			return descriptor, fmt.Errorf(
				"target %q: where clause lists %d parameters, type expression lists %d",
				name, len(params), len(paramNames),
			)
		}

		for idx, param := range params {
			if param.Name != paramNames[idx] {
				return descriptor, fmt.Errorf(
					"target %q: where clause parameter %q does not match %q",
					name, param.Name, paramNames[idx],
				)
			}
		}

		descriptor.Params = params
	}

	return descriptor, nil
}

// parseTypeExpr parses "Name" or "Name[T, F]".
func parseTypeExpr(input string) (string, []string, error) {
	name, paramList, generic := strings.Cut(input, "[")

	name = strings.TrimSpace(name)
	if !isTypeName(name) {
		return "", nil, fmt.Errorf("invalid target type name %q", name)
	}

	if !generic {
		return name, nil, nil
	}

	paramList, ok := strings.CutSuffix(strings.TrimSpace(paramList), "]")
	if !ok {
		return "", nil, fmt.Errorf("target %q: missing closing bracket", name)
	}

	var names []string
	var seen set.Set[string]

	for _, paramName := range strings.Split(paramList, ",") {
		paramName = strings.TrimSpace(paramName)
		if !isIdent(paramName) {
			return "", nil, fmt.Errorf("target %q: invalid type parameter %q", name, paramName)
		}

		if !seen.Insert(paramName) {
			return "", nil, fmt.Errorf("target %q: duplicate type parameter %q", name, paramName)
		}

		names = append(names, paramName)
	}

	return name, names, nil
}

// parseWhereClause parses "[T: Bound, F]".
func parseWhereClause(input string) ([]Param, error) {
	inner, ok := strings.CutPrefix(input, "[")
	if !ok {
		return nil, fmt.Errorf("where clause must be bracketed, got %q", input)
	}

	inner, ok = strings.CutSuffix(inner, "]")
	if !ok {
		return nil, fmt.Errorf("where clause must be bracketed, got %q", input)
	}

	var params []Param

	// bounds may themselves be generic, split only on unnested commas
	for _, part := range splitTopLevel(inner) {
		name, bound, hasBound := strings.Cut(part, ":")

		name = strings.TrimSpace(name)
		if !isIdent(name) {
			return nil, fmt.Errorf("invalid type parameter %q in where clause", name)
		}

		param := Param{Name: name}

		if hasBound {
			param.Bound = strings.TrimSpace(bound)
			if param.Bound == "" {
				return nil, fmt.Errorf("empty bound for type parameter %q", name)
			}
		}

		params = append(params, param)
	}

	return params, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for idx, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if idx > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// isTypeName accepts identifiers and package qualified identifiers.
func isTypeName(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isIdent(part) {
			return false
		}
	}

	return s != ""
}
