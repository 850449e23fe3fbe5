package unitsafe

// FormatOption configures a Format call.
type FormatOption func(*formatConfig)

// formatConfig holds configuration for a single Format call.
type formatConfig struct {
	// precision is the number of digits after the decimal point.
	precision int

	// hasPrecision records whether WithPrecision was supplied; without it
	// Format uses the shortest round-trip rendering.
	hasPrecision bool
}

// WithPrecision renders the value with exactly n digits after the decimal
// point instead of the shortest round-trip rendering.
func WithPrecision(n uint) FormatOption {
	return func(c *formatConfig) {
		c.precision = int(n)
		c.hasPrecision = true
	}
}

// CommandOption configures NewCommand.
type CommandOption func(*commandConfig)

// commandConfig holds configuration for CLI construction.
type commandConfig struct {
	// logger receives diagnostic log messages. May be nil.
	logger Logger
}

// WithCommandLogger sets a logger for diagnostic output from the CLI
// subcommands. If not set, logging is disabled.
func WithCommandLogger(logger Logger) CommandOption {
	return func(c *commandConfig) {
		c.logger = logger
	}
}

// Logger is the interface for diagnostic logging.
// Compatible with slog, zap, logrus, and other structured loggers.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
}
