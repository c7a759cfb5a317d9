package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	output string
	stdout io.Writer
	stderr io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithOutput sets the file the build command writes the feed to.
// Empty or "-" means standard output.
func WithOutput(path string) Option {
	return func(a *application) {
		a.output = path
	}
}

// WithStdio overrides the writers used for data output and logs.
func WithStdio(stdout, stderr io.Writer) Option {
	return func(a *application) {
		a.stdout = stdout
		a.stderr = stderr
	}
}
