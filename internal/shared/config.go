package shared

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv    string `yaml:"app_env" env:"APP_ENV"`
	DataDir   string `yaml:"data_dir" env:"HOTELDESK_DATA_DIR"`
	ReportDir string `yaml:"report_dir" env:"HOTELDESK_REPORT_DIR"`
}

// Load reads the optional YAML config (path argument, falling back to
// HOTELDESK_CONFIG), expands ${ENV_VAR} placeholders, then applies
// environment overrides, so HOTELDESK_* variables always win.
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		path = os.Getenv("HOTELDESK_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if c.AppEnv == "" {
		c.AppEnv = "prod"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.ReportDir == "" {
		c.ReportDir = "reports"
	}
	return c, nil
}
