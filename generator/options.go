package generator

// Config holds the generator configuration.
type Config struct {
	// ProgressCallback is called during generation to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// Package is the name of the generated Go package. It doubles as
	// the base name of the aggregator file and is a reserved tag.
	Package string

	// Extension is the file name extension of layout files
	Extension string
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Package:   "boards",
		Extension: ".layout",
	}
}

// Option is a functional option for configuring the Generator.
type Option func(*Config)

// WithProgressCallback sets a callback function to track generation
// progress.
//
// Example:
//
//	gen := generator.New(
//	    generator.WithProgressCallback(func(p generator.Progress) {
//	        fmt.Printf("%d/%d %s\n", p.Index, p.Total, p.Path)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the generator operations.
//
// Example:
//
//	gen := generator.New(generator.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPackage sets the name of the generated package. The name must be
// a valid lower-case Go identifier; invalid values are ignored.
// Default is "boards".
//
// Example:
//
//	gen := generator.New(generator.WithPackage("pinmap"))
func WithPackage(name string) Option {
	return func(c *Config) {
		if validPackageName(name) {
			c.Package = name
		}
	}
}

// WithExtension sets the file name extension used to discover layout
// files, including the leading dot. Invalid values are ignored.
// Default is ".layout".
//
// Example:
//
//	gen := generator.New(generator.WithExtension(".board"))
func WithExtension(ext string) Option {
	return func(c *Config) {
		if len(ext) > 1 && ext[0] == '.' {
			c.Extension = ext
		}
	}
}

// validPackageName reports whether name is usable as the package
// clause of the generated files: lower-case letters, digits and
// underscores, not starting with a digit.
func validPackageName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
