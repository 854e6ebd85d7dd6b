package config

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	Text OutputFormat = "text"
	JSON OutputFormat = "json"
	// NDJSON writes one compact JSON object per position, as it is produced.
	NDJSON OutputFormat = "ndjson"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is text, json or ndjson
	Format OutputFormat `yaml:"format" validate:"oneof=text json ndjson"`

	// ShowBoard includes the board dump in text output
	ShowBoard bool `yaml:"show_board"`

	// ShowMoves lists the legal moves of each position
	ShowMoves bool `yaml:"show_moves"`

	// Indent pretty-prints JSON output; ndjson is never indented
	Indent bool `yaml:"indent"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		ShowBoard: true,
		ShowMoves: true,
		Indent:    true,
	}
}
