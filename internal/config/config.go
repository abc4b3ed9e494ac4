// Package config loads ThinkLock's runtime configuration.
//
// Values are resolved in three layers: built-in defaults, an optional JSON
// file, then THINKLOCK_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "THINKLOCK_CONFIG"
	EnvDataDir    = "THINKLOCK_DATA_DIR"
	EnvAddr       = "THINKLOCK_ADDR"
	EnvCORSOrigin = "THINKLOCK_CORS_ORIGIN"
)

// Config is the fully resolved configuration.
type Config struct {
	// DataDir holds the SQLite file.
	DataDir string `json:"data_dir"`
	// Addr is the REST API listen address.
	Addr string `json:"addr"`
	// CORSOrigin is echoed in Access-Control-Allow-Origin. Empty disables CORS.
	CORSOrigin        string `json:"cors_origin"`
	ReadTimeoutMS     int    `json:"read_timeout_ms"`
	WriteTimeoutMS    int    `json:"write_timeout_ms"`
	ShutdownTimeoutMS int    `json:"shutdown_timeout_ms"`
}

type fileConfig struct {
	DataDir           *string `json:"data_dir"`
	Addr              *string `json:"addr"`
	CORSOrigin        *string `json:"cors_origin"`
	ReadTimeoutMS     *int    `json:"read_timeout_ms"`
	WriteTimeoutMS    *int    `json:"write_timeout_ms"`
	ShutdownTimeoutMS *int    `json:"shutdown_timeout_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:           "~/.thinklock",
		Addr:              "127.0.0.1:8080",
		CORSOrigin:        "http://localhost:3000",
		ReadTimeoutMS:     10000,
		WriteTimeoutMS:    10000,
		ShutdownTimeoutMS: 5000,
	}
}

// Load resolves the configuration. path may be empty, in which case
// THINKLOCK_CONFIG and then ~/.thinklock/config.json are tried. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolvedPath := strings.TrimSpace(path)
	if resolvedPath == "" {
		resolvedPath = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if resolvedPath == "" {
		resolvedPath = defaultConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)

	dataDir, err := expandPath(cfg.DataDir)
	if err != nil {
		return Config{}, fmt.Errorf("expand data_dir %q: %w", cfg.DataDir, err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: data_dir is empty")
	}
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: addr is empty")
	}
	if c.ReadTimeoutMS <= 0 || c.WriteTimeoutMS <= 0 || c.ShutdownTimeoutMS <= 0 {
		return errors.New("config: timeouts must be positive")
	}
	return nil
}

// ReadTimeout is ReadTimeoutMS as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// WriteTimeout is WriteTimeoutMS as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMS) * time.Millisecond
}

// ShutdownTimeout is ShutdownTimeoutMS as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".thinklock", "config.json")
}

func mergeFromFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyFileConfig(cfg, fc)
	return nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.DataDir != nil {
		cfg.DataDir = *fc.DataDir
	}
	if fc.Addr != nil {
		cfg.Addr = *fc.Addr
	}
	if fc.CORSOrigin != nil {
		cfg.CORSOrigin = *fc.CORSOrigin
	}
	if fc.ReadTimeoutMS != nil {
		cfg.ReadTimeoutMS = *fc.ReadTimeoutMS
	}
	if fc.WriteTimeoutMS != nil {
		cfg.WriteTimeoutMS = *fc.WriteTimeoutMS
	}
	if fc.ShutdownTimeoutMS != nil {
		cfg.ShutdownTimeoutMS = *fc.ShutdownTimeoutMS
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Addr = v
	}
	// An explicitly empty origin disables CORS, so only presence matters.
	if v, ok := os.LookupEnv(EnvCORSOrigin); ok {
		cfg.CORSOrigin = strings.TrimSpace(v)
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// String renders the configuration for `thinklock config`.
func (c Config) String() string {
	var b strings.Builder
	b.WriteString("data_dir:            " + c.DataDir + "\n")
	b.WriteString("addr:                " + c.Addr + "\n")
	b.WriteString("cors_origin:         " + c.CORSOrigin + "\n")
	b.WriteString("read_timeout_ms:     " + strconv.Itoa(c.ReadTimeoutMS) + "\n")
	b.WriteString("write_timeout_ms:    " + strconv.Itoa(c.WriteTimeoutMS) + "\n")
	b.WriteString("shutdown_timeout_ms: " + strconv.Itoa(c.ShutdownTimeoutMS) + "\n")
	return b.String()
}
