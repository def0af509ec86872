package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation constants
const (
	MinRefreshInterval = 1     // Minimum refresh interval in seconds
	MinPort            = 1     // Minimum valid port number
	MaxPort            = 65535 // Maximum valid port number
	MaxReadTimeout     = 60    // Maximum remote read timeout in seconds

	// Default values
	DefaultSource          = "local"
	DefaultTickRate        = 60 // Ticks per second of game time
	DefaultRefreshInterval = 5  // Seconds between clock reads
	DefaultHTTPPort        = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultReadTimeout     = 10 // Remote read timeout in seconds
)

// LocalSource configures the free-running local clock source
type LocalSource struct {
	Epoch string `yaml:"epoch"` // RFC 3339; empty starts the clock at process start
}

// RemoteSource configures the remote game server clock source
type RemoteSource struct {
	URL string `yaml:"url"`
}

// Config represents the application configuration
type Config struct {
	Source          string       `yaml:"source"` // local or remote
	TickRate        int          `yaml:"tick_rate"`
	Local           LocalSource  `yaml:"local"`
	Remote          RemoteSource `yaml:"remote"`
	RefreshInterval int          `yaml:"refresh_interval"` // seconds
	HTTPPort        int          `yaml:"http_port"`
	LogLevel        string       `yaml:"log_level"`
	LogFormat       string       `yaml:"log_format"`   // json or text
	ReadTimeout     int          `yaml:"read_timeout"` // remote read timeout in seconds
}

// Load loads configuration from a YAML file and applies environment variable overrides
func Load(path string) (*Config, error) {
	// #nosec G304 -- Config file path is provided by administrator via CLI flag, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// EpochTime returns the parsed local epoch. A zero time means the epoch is
// unset and the clock starts at process start.
func (c *Config) EpochTime() (time.Time, error) {
	if c.Local.Epoch == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.Local.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local.epoch: %w", err)
	}
	return t, nil
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	// Override source kind
	if val := os.Getenv("GAME_CLOCK_SOURCE"); val != "" {
		cfg.Source = val
	}

	// Override tick rate
	if val := os.Getenv("GAME_CLOCK_TICK_RATE"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid GAME_CLOCK_TICK_RATE: must be an integer, got %q", val)
		}
		cfg.TickRate = i
	}

	// Override local epoch
	if val := os.Getenv("GAME_CLOCK_EPOCH"); val != "" {
		cfg.Local.Epoch = val
	}

	// Override remote URL
	if val := os.Getenv("GAME_CLOCK_REMOTE_URL"); val != "" {
		cfg.Remote.URL = val
	}

	// Override refresh interval
	if val := os.Getenv("GAME_CLOCK_REFRESH_INTERVAL"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid GAME_CLOCK_REFRESH_INTERVAL: must be an integer, got %q", val)
		}
		cfg.RefreshInterval = i
	}

	// Override HTTP port
	if val := os.Getenv("GAME_CLOCK_HTTP_PORT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid GAME_CLOCK_HTTP_PORT: must be an integer, got %q", val)
		}
		cfg.HTTPPort = i
	}

	// Override log level
	if val := os.Getenv("GAME_CLOCK_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	// Override log format
	if val := os.Getenv("GAME_CLOCK_LOG_FORMAT"); val != "" {
		cfg.LogFormat = val
	}

	// Override remote read timeout
	if val := os.Getenv("GAME_CLOCK_READ_TIMEOUT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid GAME_CLOCK_READ_TIMEOUT: must be an integer, got %q", val)
		}
		cfg.ReadTimeout = i
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Source {
	case "local":
		if _, err := cfg.EpochTime(); err != nil {
			return err
		}
	case "remote":
		if cfg.Remote.URL == "" {
			return fmt.Errorf("remote source requires remote.url")
		}
		u, err := url.Parse(cfg.Remote.URL)
		if err != nil {
			return fmt.Errorf("invalid remote.url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("remote.url must be http or https, got %q", cfg.Remote.URL)
		}
	default:
		return fmt.Errorf("source must be \"local\" or \"remote\", got %q", cfg.Source)
	}

	if cfg.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", cfg.TickRate)
	}

	if cfg.RefreshInterval < MinRefreshInterval {
		return fmt.Errorf("refresh_interval must be at least %d seconds, got %d", MinRefreshInterval, cfg.RefreshInterval)
	}

	if cfg.HTTPPort < MinPort || cfg.HTTPPort > MaxPort {
		return fmt.Errorf("http_port must be between %d and %d", MinPort, MaxPort)
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive, got %d", cfg.ReadTimeout)
	}

	if cfg.ReadTimeout > MaxReadTimeout {
		return fmt.Errorf("read_timeout should not exceed %d seconds, got %d", MaxReadTimeout, cfg.ReadTimeout)
	}

	return nil
}
