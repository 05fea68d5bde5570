package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
)

type yamlConfig struct {
	NumFloors      int    `yaml:"NumFloors"`
	TravelDuration string `yaml:"TravelDuration"`
	ArrivalPause   string `yaml:"ArrivalPause"`
	LogLevel       string `yaml:"LogLevel"`
	LogFile        string `yaml:"LogFile"`
}

// Load builds a Config from the defaults, then the YAML file at yamlPath,
// then the env file at envPath. Missing files are skipped; an empty path
// skips that source.
func Load(yamlPath, envPath string) (Config, error) {
	c := Default()

	if yamlPath != "" {
		if err := applyYAML(&c, yamlPath); err != nil {
			return c, err
		}
	}
	if envPath != "" {
		if err := applyEnv(&c, envPath); err != nil {
			return c, err
		}
	}
	return c, c.Validate()
}

func applyYAML(c *Config, path string) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	var y yamlConfig
	if err := yaml.NewDecoder(file).Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if y.NumFloors != 0 {
		c.NumFloors = y.NumFloors
	}
	if err := setDuration(&c.TravelDuration, y.TravelDuration, "TravelDuration"); err != nil {
		return err
	}
	if err := setDuration(&c.ArrivalPause, y.ArrivalPause, "ArrivalPause"); err != nil {
		return err
	}
	if y.LogLevel != "" {
		c.LogLevel = y.LogLevel
	}
	if y.LogFile != "" {
		c.LogFile = y.LogFile
	}
	return nil
}

func applyEnv(c *Config, path string) error {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read env %s: %w", path, err)
	}

	if v := env["LIFTSIM_FLOORS"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LIFTSIM_FLOORS: %w", err)
		}
		c.NumFloors = n
	}
	if err := setDuration(&c.TravelDuration, env["LIFTSIM_TRAVEL"], "LIFTSIM_TRAVEL"); err != nil {
		return err
	}
	if err := setDuration(&c.ArrivalPause, env["LIFTSIM_PAUSE"], "LIFTSIM_PAUSE"); err != nil {
		return err
	}
	if v := env["LIFTSIM_LOG_LEVEL"]; v != "" {
		c.LogLevel = v
	}
	if v := env["LIFTSIM_LOG_FILE"]; v != "" {
		c.LogFile = v
	}
	return nil
}

func setDuration(dst *time.Duration, value, name string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}

func (c Config) Validate() error {
	if c.NumFloors < 2 || c.NumFloors > MaxFloors {
		return fmt.Errorf("number of floors must be between 2 and %d, got %d", MaxFloors, c.NumFloors)
	}
	if c.TravelDuration <= 0 {
		return fmt.Errorf("travel duration must be positive, got %v", c.TravelDuration)
	}
	if c.ArrivalPause < 0 {
		return fmt.Errorf("arrival pause must not be negative, got %v", c.ArrivalPause)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
