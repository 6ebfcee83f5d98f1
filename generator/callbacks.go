package generator

// Progress phases reported to the ProgressCallback.
const (
	// PhaseParsing is reported before a layout file is parsed
	PhaseParsing = "parsing"

	// PhaseWriting is reported after a board file has been written
	PhaseWriting = "writing"

	// PhaseAggregate is reported before the aggregator file is written
	PhaseAggregate = "aggregate"

	// PhaseComplete is reported once after all files have been written
	PhaseComplete = "complete"
)

// Progress contains information about the generation progress.
// Passed to ProgressCallback during a Run.
type Progress struct {
	// Phase describes the current operation phase:
	//   "parsing"   - Reading and parsing a layout file
	//   "writing"   - Board file rendered and written
	//   "aggregate" - Writing the shared aggregator file
	//   "complete"  - Run finished successfully
	Phase string

	// Path is the layout or output file the phase applies to
	Path string

	// Tag is the board's tag, once known (empty while parsing)
	Tag string

	// Name is the board's display name, once known
	Name string

	// Index is the 1-based index of the current layout file
	Index int

	// Total is the number of layout files discovered
	Total int
}

// ProgressCallback is called during a Run to report progress.
// Implementations should return quickly to avoid blocking generation.
//
// Example:
//
//	gen := generator.New(
//	    generator.WithProgressCallback(func(p generator.Progress) {
//	        fmt.Printf("[%s] %d/%d %s\n", p.Phase, p.Index, p.Total, p.Path)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// generator. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	gen := generator.New(generator.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
