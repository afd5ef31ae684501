// Package gen parses target type descriptors and emits the forwarding
// implementations that make the targets satisfy the original hashing and
// equality contracts by delegating to their bridged object behavior.
package gen

import "strings"

// Param is one type parameter of a generic target, with an optional bound.
// An empty bound means any.
type Param struct {
	Name  string
	Bound string
}

// Descriptor names one target type a forwarding implementation is
// generated for. Targets are independent of each other: each descriptor
// produces one self contained block of code.
type Descriptor struct {
	// Name is the target type name, possibly package qualified.
	Name string

	// Params are the type parameters of a generic target, in declaration
	// order. Empty for plain types.
	Params []Param

	// Interface marks a target declared with the interface keyword. For
	// interface targets no methods can be generated; the emitter produces
	// a forwarding wrapper alias and compile time assertions instead.
	Interface bool
}

// Ident returns the unqualified base name of the target, used to derive
// the names of generated declarations.
func (d Descriptor) Ident() string {
	if idx := strings.LastIndex(d.Name, "."); idx >= 0 {
		return d.Name[idx+1:]
	}

	return d.Name
}

// Generic reports whether the target has type parameters.
func (d Descriptor) Generic() bool {
	return len(d.Params) > 0
}

// Args renders the type argument list, e.g. "[T, F]". Empty for plain
// types.
func (d Descriptor) Args() string {
	if len(d.Params) == 0 {
		return ""
	}

	names := make([]string, len(d.Params))
	for idx, param := range d.Params {
		names[idx] = param.Name
	}

	return "[" + strings.Join(names, ", ") + "]"
}

// Decls renders the type parameter declaration list with bounds, e.g.
// "[T objectsafe.HashObject, F any]". Empty for plain types.
func (d Descriptor) Decls() string {
	if len(d.Params) == 0 {
		return ""
	}

	decls := make([]string, len(d.Params))
	for idx, param := range d.Params {
		bound := param.Bound
		if bound == "" {
			bound = "any"
		}

		decls[idx] = param.Name + " " + bound
	}

	return "[" + strings.Join(decls, ", ") + "]"
}

// Target renders the instantiated target type, e.g. "Pair[T]" or "Shape".
func (d Descriptor) Target() string {
	return d.Name + d.Args()
}
