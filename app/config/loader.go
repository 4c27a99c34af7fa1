package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML file at path, if any
// 3. Override with environment variables
// 4. Override with command line flags
func (l *Loader) Load(path string, overrides *ConfigOverrides) (*Config, error) {
	if path != "" {
		if err := l.config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.apply(l.config)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Addr           *string
	SessionBackend *string
	SessionTTL     *time.Duration
	SQLitePath     *string
	Neo4jURI       *string
	LogLevel       *string
	LogFormat      *string
}

func (o *ConfigOverrides) apply(config *Config) {
	if o.Addr != nil {
		config.Server.Addr = *o.Addr
	}
	if o.SessionBackend != nil {
		config.Session.Backend = *o.SessionBackend
	}
	if o.SessionTTL != nil {
		config.Session.TTL.Duration = *o.SessionTTL
	}
	if o.SQLitePath != nil {
		config.SQLite.Path = *o.SQLitePath
	}
	if o.Neo4jURI != nil {
		config.Neo4j.URI = *o.Neo4jURI
	}
	if o.LogLevel != nil {
		config.Log.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		config.Log.Format = *o.LogFormat
	}
}
