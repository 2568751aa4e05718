// Command numval-gen compiles a YAML control file into Go preset
// definitions.
//
// Usage:
//
//	numval-gen -input presets.yaml -output presets_gen.go [-package presets]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/numval/numval-go/pkg/config"
)

func main() {
	input := flag.String("input", "", "Path to the controls YAML")
	output := flag.String("output", "", "Path of the generated Go file")
	pkg := flag.String("package", "presets", "Package name of the generated file")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: numval-gen -input <path> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, pkg string) error {
	f, err := config.Load(input)
	if err != nil {
		return fmt.Errorf("loading controls: %w", err)
	}

	code, err := Generate(f, pkg)
	if err != nil {
		return fmt.Errorf("generating presets: %w", err)
	}

	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}
	fmt.Printf("  generated %s (%d presets)\n", output, len(f.Controls))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
