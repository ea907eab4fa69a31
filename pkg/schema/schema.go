// Package schema defines the application configuration structures.
package schema

// Configuration is the top-level client configuration, loaded from amigo.yaml,
// environment variables and defaults.
type Configuration struct {
	API  APISettings  `yaml:"api" json:"api" mapstructure:"api"`
	Chat ChatSettings `yaml:"chat" json:"chat" mapstructure:"chat"`
	Logs LogsSettings `yaml:"logs" json:"logs" mapstructure:"logs"`
}

// APISettings configures the connection to the assistant service.
type APISettings struct {
	// BaseURL is the address of the assistant service, without the /api suffix.
	BaseURL string `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	// TimeoutSeconds bounds every request to the assistant service.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ChatSettings configures the conversation behavior.
type ChatSettings struct {
	// TopK is the maximum number of cited sources requested per answer.
	TopK int `yaml:"top_k" json:"top_k" mapstructure:"top_k"`
}

// LogsSettings configures diagnostic logging.
type LogsSettings struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}
