// Package config loads the daemon configuration from a yaml file and
// ELEVATORD_* environment variables. Precedence is flags over environment
// over file over defaults; the flag layer lives in the cmd packages.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/kris27x/ElevatorControlSystem/internal/building"
)

const (
	EnvAddr      = "ELEVATORD_ADDR"
	EnvName      = "ELEVATORD_NAME"
	EnvLogLevel  = "ELEVATORD_LOG_LEVEL"
	EnvFloors    = "ELEVATORD_FLOORS"
	EnvElevators = "ELEVATORD_ELEVATORS"
)

type Config struct {
	ListenAddr          string `yaml:"listenAddr"`
	InstanceName        string `yaml:"instanceName"`
	LogLevel            string `yaml:"logLevel"`
	NumberOfFloors      int    `yaml:"numberOfFloors"`
	ActiveElevatorCount int    `yaml:"activeElevatorCount"`
}

// Default is the configuration used when no file and no overrides are
// present: a ten floor building served by three elevators on :8080.
func Default() Config {
	return Config{
		ListenAddr:          ":8080",
		LogLevel:            "info",
		NumberOfFloors:      10,
		ActiveElevatorCount: 3,
	}
}

// Load reads path into a copy of the defaults, so fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays ELEVATORD_* environment variables, including any
// loaded into the process from a .env file.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvAddr); ok {
		c.ListenAddr = v
	}
	if v, ok := os.LookupEnv(EnvName); ok {
		c.InstanceName = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvFloors); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvFloors, err)
		}
		c.NumberOfFloors = n
	}
	if v, ok := os.LookupEnv(EnvElevators); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvElevators, err)
		}
		c.ActiveElevatorCount = n
	}
	return nil
}

// Building maps the fleet-related fields onto the core config type.
func (c Config) Building() building.Config {
	return building.Config{
		NumberOfFloors:      c.NumberOfFloors,
		ActiveElevatorCount: c.ActiveElevatorCount,
	}
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listenAddr must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	return c.Building().Validate()
}
