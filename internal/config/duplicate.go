package config

// DuplicateConfig holds settings for repeated-position detection in batches.
type DuplicateConfig struct {
	// Enabled turns detection on
	Enabled bool `yaml:"enabled"`

	// ExactMatch also requires equal move clocks
	ExactMatch bool `yaml:"exact_match"`

	// MaxCapacity bounds the number of stored positions (0 = unlimited)
	MaxCapacity int `yaml:"max_capacity" validate:"min=0"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Enabled:     false,
		ExactMatch:  false,
		MaxCapacity: 0,
	}
}
