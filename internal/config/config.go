package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configurable shell settings.
type Config struct {
	LoginNotice    string `json:"login_notice"`    // Go duration, e.g. "3s"
	CapacityNotice string `json:"capacity_notice"` // Go duration, e.g. "4s"
	Mouse          *bool  `json:"mouse,omitempty"` // nil means unset
	LogFile        string `json:"log_file"`
	Watch          bool   `json:"watch"` // reload notice durations when the file changes
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	mouse := true
	return Config{
		LoginNotice:    "3s",
		CapacityNotice: "4s",
		Mouse:          &mouse,
		LogFile:        "pgp-debug.log",
	}
}

// GlobalPath returns ~/.config/pgp/config.json.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pgp", "config.json"), nil
}

// ProjectPath is the per-directory override file.
const ProjectPath = ".pgpconfig"

// LoadGlobal reads ~/.config/pgp/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// LoadProject reads .pgpconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(ProjectPath, false)
}

// LoadFile reads an explicitly named config file. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	cfg, err := loadFile(path, false)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return cfg, nil
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := cfg.validate(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, d := range []string{c.LoginNotice, c.CapacityNotice} {
		if d == "" {
			continue
		}
		v, err := time.ParseDuration(d)
		if err != nil {
			return err
		}
		if v <= 0 {
			return errors.New("notice duration must be positive: " + d)
		}
	}
	return nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	apply(&result, global)
	apply(&result, project)
	return result
}

func apply(dst, src *Config) {
	if src == nil {
		return
	}
	if src.LoginNotice != "" {
		dst.LoginNotice = src.LoginNotice
	}
	if src.CapacityNotice != "" {
		dst.CapacityNotice = src.CapacityNotice
	}
	if src.Mouse != nil {
		v := *src.Mouse
		dst.Mouse = &v
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
	if src.Watch {
		dst.Watch = true
	}
}

// LoginNoticeDuration is how long the invalid-credentials notice stays up.
func (c Config) LoginNoticeDuration() time.Duration {
	return durationOr(c.LoginNotice, 3*time.Second)
}

// CapacityNoticeDuration is how long the tab-limit notice stays up.
func (c Config) CapacityNoticeDuration() time.Duration {
	return durationOr(c.CapacityNotice, 4*time.Second)
}

// MouseEnabled reports whether mouse support should be turned on.
func (c Config) MouseEnabled() bool {
	return c.Mouse == nil || *c.Mouse
}

func durationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
