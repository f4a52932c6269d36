package types

// CatalogConfig holds settings for loading and displaying the catalog.
type CatalogConfig struct {
	// CatalogPath is the markdown file containing the dataset catalog
	// (default "README.md").
	CatalogPath string `json:"catalog" yaml:"catalog"`

	// TruncateLength bounds description length in non-detailed output
	// (default 100).
	TruncateLength int `json:"truncate_length" yaml:"truncate_length"`

	// Verbose enables progress lines on the configured log sink.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// Defaults fills zero-valued fields with their documented defaults.
func (c CatalogConfig) Defaults() CatalogConfig {
	if c.CatalogPath == "" {
		c.CatalogPath = "README.md"
	}
	if c.TruncateLength <= 0 {
		c.TruncateLength = 100
	}
	return c
}
