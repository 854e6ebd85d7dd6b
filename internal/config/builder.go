package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing config instead of the defaults.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogFile sends logs to a file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBoard controls the board dump in text output.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithMoves controls listing of legal moves.
func (b *ConfigBuilder) WithMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// WithWorkers sets the batch worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithPerftDepth sets the perft depth run on every batch position.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Batch.PerftDepth = depth
	return b
}

// WithDuplicates turns repeated-position detection on or off.
func (b *ConfigBuilder) WithDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Batch.Duplicates.Enabled = enabled
	return b
}

// WithExactDuplicates makes duplicates match on move clocks too.
func (b *ConfigBuilder) WithExactDuplicates(exact bool) *ConfigBuilder {
	b.cfg.Batch.Duplicates.ExactMatch = exact
	return b
}

// WithDuplicateCapacity bounds the duplicate table; 0 means unlimited.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Batch.Duplicates.MaxCapacity = n
	return b
}

// WithPrompt sets the REPL prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.REPL.Prompt = prompt
	return b
}

// WithHistoryFile sets the REPL history file.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.REPL.HistoryFile = path
	return b
}
