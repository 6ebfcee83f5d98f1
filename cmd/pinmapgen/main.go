// Command pinmapgen generates board pin mapping source files from a
// directory of layout files.
//
// Usage:
//
//	pinmapgen [layouts_dir] [board_code_dir]
//
// With no arguments, layouts are read from "layouts" and generated
// files are written to "boards". Pass -v to enable debug logging.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/moffa90/go-pinmap/generator"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	layoutsDir := "layouts"
	outDir := "boards"

	args := flag.Args()
	switch len(args) {
	case 0:
	case 1:
		layoutsDir = args[0]
	case 2:
		layoutsDir = args[0]
		outDir = args[1]
	default:
		usage()
		os.Exit(2)
	}

	fmt.Printf("Using layouts dir %q, generating to %q\n", layoutsDir, outDir)

	opts := []generator.Option{
		generator.WithProgressCallback(printProgress),
	}
	if *verbose {
		opts = append(opts, generator.WithLogger(stdLogger{}))
	}

	tags, err := generator.New(opts...).Run(layoutsDir, outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done! Build with one of:")
	for _, tag := range tags {
		fmt.Printf("  go build -tags %s\n", tag)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "%s [layouts_dir] [board_code_dir]\n", os.Args[0])
	flag.PrintDefaults()
}

func printProgress(p generator.Progress) {
	switch p.Phase {
	case generator.PhaseParsing:
		fmt.Printf("Processing %q..\n", p.Path)
	case generator.PhaseWriting:
		fmt.Printf("Processed %q [%s] from %q.\n", p.Name, p.Tag, p.Path)
	case generator.PhaseAggregate:
		fmt.Printf("Writing final %q..\n", p.Path)
	}
}

// stdLogger adapts the standard library logger to the generator's
// Logger interface.
type stdLogger struct{}

func (stdLogger) Debug(msg string, keysAndValues ...interface{}) {
	logPrint("DEBUG", msg, keysAndValues)
}

func (stdLogger) Info(msg string, keysAndValues ...interface{}) {
	logPrint("INFO", msg, keysAndValues)
}

func (stdLogger) Error(msg string, keysAndValues ...interface{}) {
	logPrint("ERROR", msg, keysAndValues)
}

func logPrint(level, msg string, kv []interface{}) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", level, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	log.Print(b.String())
}
