package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	User   UserConfig   `yaml:"user"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DataConfig struct {
	Dir            string `yaml:"dir"`
	MigrationsPath string `yaml:"migrations_path"`
}

// UserConfig identifies the single local user the app tracks.
type UserConfig struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix IRONFORGE_:
//
//	IRONFORGE_SERVER_HOST, IRONFORGE_SERVER_PORT,
//	IRONFORGE_DATA_DIR, IRONFORGE_MIGRATIONS_PATH,
//	IRONFORGE_USER_EMAIL, IRONFORGE_USER_NAME
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONFORGE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("IRONFORGE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("IRONFORGE_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("IRONFORGE_MIGRATIONS_PATH"); v != "" {
		cfg.Data.MigrationsPath = v
	}
	if v := os.Getenv("IRONFORGE_USER_EMAIL"); v != "" {
		cfg.User.Email = v
	}
	if v := os.Getenv("IRONFORGE_USER_NAME"); v != "" {
		cfg.User.Name = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		// Local app shell: loopback unless explicitly exposed.
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Data.MigrationsPath == "" {
		cfg.Data.MigrationsPath = "migrations"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.User.Email == "" {
		return fmt.Errorf("user.email is required")
	}
	return nil
}
