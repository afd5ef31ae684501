// Package main implements objgen, the forwarding implementation
// generator. It accepts a comma separated list of target type descriptors
// and emits, for each, the code that makes the target satisfy the
// original hashing and equality contracts by delegating to its bridged
// object behavior.
//
// Typical use as a generate directive within the target's package:
//
//	//go:generate go run github.com/dnut/object-safe/cmd/objgen -o zz_generated_objects.go -hash -equal "interface Shape, Holder, Pair[T] where [T: objectsafe.HashObject]"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dnut/object-safe/internal/gen"
	"golang.org/x/tools/imports"
)

func main() {
	var (
		output     = flag.String("o", "", "output file, defaults to stdout")
		pkg        = flag.String("p", os.Getenv("GOPACKAGE"), "package name of the generated file")
		importPath = flag.String("import", "", "import path of the objectsafe package")
		hash       = flag.Bool("hash", false, "generate the content hash contract")
		equal      = flag.Bool("equal", false, "generate the equality contract")
		strict     = flag.Bool("strict", false, "assert strict equality of the targets")
	)

	flag.Parse()

	opts := gen.Options{
		Package: *pkg,
		Import:  *importPath,
		Contracts: gen.Contracts{
			Hash:   *hash,
			Equal:  *equal,
			Strict: *strict,
		},
	}

	if err := run(strings.Join(flag.Args(), " "), opts, *output); err != nil {
		log.Fatalf("objgen: %v", err)
	}
}

func run(input string, opts gen.Options, output string) error {
	descriptors, err := gen.Parse(input)
	if err != nil {
		return err
	}

	source, err := gen.Emit(descriptors, opts)
	if err != nil {
		return err
	}

	filename := output
	if filename == "" {
		filename = opts.Package + ".go"
	}

	formatted, err := imports.Process(filename, source, nil)
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}

	if output == "" {
		_, err := os.Stdout.Write(formatted)
		return err
	}

	return os.WriteFile(output, formatted, 0o644)
}
