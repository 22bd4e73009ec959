package entity

// ConfigKeyInfo documents one key of config.toml.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "dialog.min_width".
	Key string `json:"key"`

	// Type is the Go type the value decodes into.
	Type string `json:"type"`

	Default     string `json:"default"`
	Description string `json:"description"`

	// Values lists the accepted values of enum keys.
	Values []string `json:"values,omitempty"`

	// Range is the accepted numeric range, e.g. "20-200".
	Range string `json:"range,omitempty"`

	// Section groups keys for display ("Dialog", "Appearance", ...).
	Section string `json:"section"`
}
