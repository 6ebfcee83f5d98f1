// Package generator turns a directory of board layout files into a
// directory of generated Go source files.
//
// Each layout produces one board file gated on the board's build tag,
// and a final aggregator file declares the shared pin vocabulary along
// with an index of every generated board. The aggregator is written
// only after every layout has been processed, so a failing layout
// never leaves a stale board index behind.
//
// # Basic Usage
//
//	gen := generator.New()
//	tags, err := gen.Run("layouts", "boards")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range tags {
//		fmt.Printf("go build -tags %s\n", tag)
//	}
//
// # Progress Tracking
//
// Register a callback to observe the run as it moves through its
// phases:
//
//	gen := generator.New(
//		generator.WithProgressCallback(func(p generator.Progress) {
//			fmt.Printf("%s %s\n", p.Phase, p.Path)
//		}),
//	)
//
// # Configuration Options
//
// The generator is configured with functional options:
//
//	gen := generator.New(
//		generator.WithPackage("pins"),
//		generator.WithExtension(".board"),
//		generator.WithLogger(myLogger),
//	)
//
// # Logging
//
// The package can emit debug logs through any logger implementing the
// Logger interface. This is compatible with structured loggers like
// zap's SugaredLogger or logr. If no logger is provided, logging is
// disabled.
//
// # Error Handling
//
// Failures carry the offending layout path in their message and wrap
// typed errors such as DuplicateTagError or ReservedTagError, which
// remain reachable through errors.As.
package generator
