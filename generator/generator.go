package generator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/moffa90/go-pinmap/layout"
)

// Generator orchestrates the layout-to-source generation run: it
// discovers board layout files, parses and validates each one and
// writes the generated Go package.
type Generator struct {
	config Config
}

// New creates a new Generator with the given options.
//
// Example:
//
//	gen := generator.New(
//	    generator.WithProgressCallback(progressFunc),
//	    generator.WithLogger(myLogger),
//	)
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{config: cfg}
}

// Run processes every layout file in layoutDir and writes one Go
// source file per board plus the shared aggregator file into outDir.
// Missing directories are created. Returns the generated board tags in
// processing order.
//
// The run stops at the first failing layout. Board files already
// written for earlier layouts are left in place; the aggregator is
// written only after every board succeeded, so a failed run never
// commits a partial board index.
//
// Example:
//
//	tags, err := gen.Run("layouts", "boards")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("generated: %v\n", tags)
func (g *Generator) Run(layoutDir, outDir string) ([]string, error) {
	if err := ensureDir(layoutDir, "layout"); err != nil {
		return nil, err
	}
	if err := ensureDir(outDir, "boards"); err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(layoutDir, "*"+g.config.Extension))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list layouts")
	}
	if len(files) == 0 {
		return nil, &NoLayoutsError{Dir: layoutDir, Extension: g.config.Extension}
	}
	sort.Strings(files)

	g.logInfo("starting generation",
		"layouts", len(files),
		"output", outDir,
		"package", g.config.Package,
	)

	var (
		tags     []string
		boards   []*layout.Board
		seenTags = make(map[string]string, len(files))
	)
	for i, path := range files {
		g.reportProgress(Progress{
			Phase: PhaseParsing,
			Path:  path,
			Index: i + 1,
			Total: len(files),
		})

		board, err := g.generateBoard(path, outDir, seenTags)
		if err != nil {
			g.logError("board generation failed", "path", path, "error", err.Error())
			return nil, errors.Wrapf(err, "error in %q", path)
		}
		boards = append(boards, board)
		tags = append(tags, buildTag(board.Tag))

		g.reportProgress(Progress{
			Phase: PhaseWriting,
			Path:  path,
			Tag:   board.Tag,
			Name:  board.Name,
			Index: i + 1,
			Total: len(files),
		})
	}

	// The aggregator is written last so every tag is known.
	aggPath := filepath.Join(outDir, g.config.Package+".go")
	g.reportProgress(Progress{
		Phase: PhaseAggregate,
		Path:  aggPath,
		Total: len(files),
	})

	src, err := renderAggregator(g.config.Package, boards)
	if err != nil {
		return nil, errors.Wrapf(err, "error in %q", aggPath)
	}
	if err := os.WriteFile(aggPath, src, 0o644); err != nil {
		return nil, errors.Wrapf(err, "error in %q", aggPath)
	}
	g.logDebug("wrote aggregator", "path", aggPath, "bytes", len(src))

	g.reportProgress(Progress{Phase: PhaseComplete, Total: len(files)})
	g.logInfo("generation complete", "boards", len(tags))

	return tags, nil
}

// generateBoard parses one layout file, validates its tag against the
// run state and writes the rendered board file. seenTags is the
// explicit accumulator of tags processed so far; it is owned by Run
// and updated here.
func (g *Generator) generateBoard(path, outDir string, seenTags map[string]string) (*layout.Board, error) {
	board, err := layout.Parse(path)
	if err != nil {
		return nil, err
	}

	g.logDebug("parsed layout",
		"path", path,
		"name", board.Name,
		"tag", board.Tag,
		"pins", len(board.Pins),
	)

	// Tags are compared in build tag space; hyphen and underscore
	// variants would collide on the same output file.
	tag := buildTag(board.Tag)
	if tag == g.config.Package {
		return nil, &ReservedTagError{Tag: board.Tag}
	}
	if first, ok := seenTags[tag]; ok {
		return nil, &DuplicateTagError{Tag: board.Tag, First: first}
	}
	seenTags[tag] = path

	// Render fully before opening the output file; a render failure
	// must not leave a truncated board file behind.
	src, err := renderBoard(g.config.Package, board)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(outDir, tag+".go")
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write board file")
	}
	g.logDebug("wrote board file", "path", outPath, "bytes", len(src))

	return board, nil
}

// ensureDir creates the directory if it does not exist and verifies
// that the path is a directory.
func ensureDir(path, kind string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s directory", kind)
		}
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s directory", kind)
	}
	if !info.IsDir() {
		return &NotDirectoryError{Path: path, Kind: kind}
	}
	return nil
}

// reportProgress calls the progress callback if configured.
func (g *Generator) reportProgress(progress Progress) {
	if g.config.ProgressCallback != nil {
		g.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (g *Generator) logDebug(msg string, keysAndValues ...interface{}) {
	if g.config.Logger != nil {
		g.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (g *Generator) logInfo(msg string, keysAndValues ...interface{}) {
	if g.config.Logger != nil {
		g.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (g *Generator) logError(msg string, keysAndValues ...interface{}) {
	if g.config.Logger != nil {
		g.config.Logger.Error(msg, keysAndValues...)
	}
}
