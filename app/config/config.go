package config

import (
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Session storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendNeo4j  = "neo4j"
)

// Config holds all configuration options for the todo server
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Session SessionConfig `toml:"session"`
	SQLite  SQLiteConfig  `toml:"sqlite"`
	Neo4j   Neo4jConfig   `toml:"neo4j"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// SessionConfig holds session cookie and storage configuration
type SessionConfig struct {
	CookieName   string   `toml:"cookie_name"`
	Secret       string   `toml:"secret"` // hex encoded; generated per process when empty
	TTL          Duration `toml:"ttl"`
	Backend      string   `toml:"backend"`
	ReapInterval Duration `toml:"reap_interval"`
}

// SQLiteConfig holds the SQLite session store location
type SQLiteConfig struct {
	Path string `toml:"path"`
}

// Neo4jConfig holds the Neo4j session store connection
type Neo4jConfig struct {
	URI      string `toml:"uri"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Duration is a time.Duration that decodes from TOML strings such as "10s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            "0.0.0.0:8080",
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Session: SessionConfig{
			CookieName:   "todo_session",
			TTL:          Duration{24 * time.Hour},
			Backend:      BackendMemory,
			ReapInterval: Duration{10 * time.Minute},
		},
		SQLite: SQLiteConfig{
			Path: "sessions.db",
		},
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Password: "password",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFile overlays the TOML file at path onto the configuration.
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return &ConfigError{Field: "file", Message: err.Error()}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if addr := os.Getenv("TODO_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	setDuration("TODO_READ_TIMEOUT", &c.Server.ReadTimeout)
	setDuration("TODO_WRITE_TIMEOUT", &c.Server.WriteTimeout)
	setDuration("TODO_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)

	// Session configuration
	if name := os.Getenv("TODO_SESSION_COOKIE"); name != "" {
		c.Session.CookieName = name
	}
	if secret := os.Getenv("TODO_SESSION_SECRET"); secret != "" {
		c.Session.Secret = secret
	}
	setDuration("TODO_SESSION_TTL", &c.Session.TTL)
	if backend := os.Getenv("TODO_SESSION_BACKEND"); backend != "" {
		c.Session.Backend = backend
	}
	setDuration("TODO_SESSION_REAP_INTERVAL", &c.Session.ReapInterval)

	// Store configuration
	if path := os.Getenv("TODO_SQLITE_PATH"); path != "" {
		c.SQLite.Path = path
	}
	if uri := os.Getenv("TODO_NEO4J_URI"); uri != "" {
		c.Neo4j.URI = uri
	}
	if user := os.Getenv("TODO_NEO4J_USERNAME"); user != "" {
		c.Neo4j.Username = user
	}
	if password := os.Getenv("TODO_NEO4J_PASSWORD"); password != "" {
		c.Neo4j.Password = password
	}

	// Log configuration
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("TODO_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}

	return nil
}

func setDuration(key string, target *Duration) {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			target.Duration = d
		}
	}
}

// SecretKey decodes the configured session secret. It returns nil when no
// secret is configured.
func (c *Config) SecretKey() ([]byte, error) {
	if c.Session.Secret == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.Session.Secret)
	if err != nil {
		return nil, &ConfigError{Field: "session.secret", Message: "secret must be hex encoded"}
	}
	return key, nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout.Duration <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout.Duration <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	if c.Session.CookieName == "" {
		return &ConfigError{Field: "session.cookie_name", Message: "cookie name cannot be empty"}
	}
	key, err := c.SecretKey()
	if err != nil {
		return err
	}
	if key != nil && len(key) < 32 {
		return &ConfigError{Field: "session.secret", Message: "secret must be at least 32 bytes, got " + strconv.Itoa(len(key))}
	}
	if c.Session.TTL.Duration <= 0 {
		return &ConfigError{Field: "session.ttl", Message: "session ttl must be positive"}
	}
	if c.Session.ReapInterval.Duration <= 0 {
		return &ConfigError{Field: "session.reap_interval", Message: "reap interval must be positive"}
	}

	switch c.Session.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return &ConfigError{Field: "sqlite.path", Message: "sqlite path cannot be empty"}
		}
	case BackendNeo4j:
		if c.Neo4j.URI == "" {
			return &ConfigError{Field: "neo4j.uri", Message: "neo4j uri cannot be empty"}
		}
	default:
		return &ConfigError{Field: "session.backend", Message: "unknown backend " + strconv.Quote(c.Session.Backend)}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
