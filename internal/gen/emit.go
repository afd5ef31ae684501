package gen

import (
	"bytes"
	"fmt"
	"text/template"
)

// Contracts selects which original contracts are synthesized for each
// target.
type Contracts struct {
	// Hash generates content hashing: an AppendHash method for concrete
	// targets, a HashObject assertion for interface targets.
	Hash bool

	// Equal generates equality: an Equal method for concrete targets, an
	// EqualObject assertion for interface targets.
	Equal bool

	// Strict asserts that equality of the target is a full equivalence
	// relation. It generates assertions only, no methods.
	Strict bool
}

func (c Contracts) none() bool {
	return !c.Hash && !c.Equal && !c.Strict
}

// Options configure a single emitted file.
type Options struct {
	// Package is the package name of the emitted file.
	Package string

	// Import is the import path of the objectsafe package. Defaults to
	// the canonical module path.
	Import string

	Contracts Contracts
}

type target struct {
	Descriptor
	Contracts Contracts
}

type file struct {
	Package string
	Import  string
	Targets []target
}

// Emit renders the forwarding implementations for all targets into a
// single Go source file. The output is valid Go exactly if every target
// satisfies its descriptor's requirements; a violation surfaces as a
// compile error of the emitted file, never as a runtime fault.
func Emit(descriptors []Descriptor, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("no package name given")
	}

	if opts.Contracts.none() {
		return nil, fmt.Errorf("no contracts selected")
	}

	if opts.Import == "" {
		opts.Import = "github.com/dnut/object-safe"
	}

	data := file{Package: opts.Package, Import: opts.Import}

	for _, descriptor := range descriptors {
		data.Targets = append(data.Targets, target{
			Descriptor: descriptor,
			Contracts:  opts.Contracts,
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render targets: %w", err)
	}

	return buf.Bytes(), nil
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by objgen. DO NOT EDIT.

package {{.Package}}

import (
	objectsafe "{{.Import}}"
)
{{range .Targets}}{{if .Interface}}
// {{.Ident}}Obj forwards hashing and equality of a {{.Name}} handle.
type {{.Ident}}Obj{{.Decls}} = objectsafe.Obj[{{.Target}}]

// New{{.Ident}}Obj wraps a handle into a {{.Ident}}Obj.
func New{{.Ident}}Obj{{.Decls}}(value {{.Target}}) {{.Ident}}Obj{{.Args}} {
	return objectsafe.Of[{{.Target}}](value)
}

func _{{.Decls}}() {
{{- if .Contracts.Hash}}
	var _ objectsafe.HashObject = ({{.Target}})(nil)
{{- end}}
{{- if .Contracts.Equal}}
	var _ objectsafe.EqualObject = ({{.Target}})(nil)
{{- end}}
{{- if .Contracts.Strict}}
	var _ objectsafe.EqObject = ({{.Target}})(nil)
{{- end}}
}
{{else}}
{{- if .Contracts.Hash}}
// AppendHash writes the content of the wrapped object into the sink.
func (v {{.Target}}) AppendHash(sink objectsafe.Sink) {
	objectsafe.AppendHash(v.Unwrap(), sink)
}
{{end}}
{{- if .Contracts.Equal}}
// Equal reports whether v and other wrap equal objects.
func (v {{.Target}}) Equal(other {{.Target}}) bool {
	return objectsafe.Equals(v.Unwrap(), other.Unwrap())
}
{{end}}
{{- /* the var declarations double as compile time contract checks */ -}}
func _{{.Decls}}() {
	var v {{.Target}}
{{- if .Contracts.Hash}}
	var _ objectsafe.HashObject = v.Unwrap()
{{- end}}
{{- if .Contracts.Equal}}
	var _ objectsafe.EqualObject = v.Unwrap()
{{- end}}
{{- if .Contracts.Strict}}
	var _ objectsafe.EqObject = v.Unwrap()
{{- end}}
	_ = v
}
{{end}}{{end}}`))
