package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ppc/internal/cmd"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	outFlag := flag.String("o", "", "Output file path (default: input with .js extension)")
	flag.Parse()

	if *versionFlag {
		printTitle()
		return
	}

	// Validate arguments
	if flag.NArg() < 1 {
		printTitle()
		fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [-o out.js] <file.pp>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	filename := flag.Arg(0)

	options := &cmd.Options{
		Debug:      *debugFlag,
		OutputPath: *outFlag,
	}

	runner := cmd.NewRunner(options)

	if err := runner.Compile(filename); err != nil {
		runner.EmitDiagnostics()
		fmt.Fprintf(os.Stderr, "\nCompilation failed: %v\n", err)
		os.Exit(1)
	}

	// Emit any warnings/info diagnostics
	runner.EmitDiagnostics()

	if options.Debug {
		fmt.Println("\n✓ Compilation successful!")
	}
}

func printTitle() {
	fmt.Printf("ppc (v%s), the ++ to JavaScript compiler\n", version)
}
