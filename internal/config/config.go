package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Sessions  SessionsConfig  `yaml:"sessions"`
	Log       LogConfig       `yaml:"log"`
}

type WorkspaceConfig struct {
	Root string `yaml:"root"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type SessionsConfig struct {
	DBPath string `yaml:"db_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. An explicit path wins over PARLEY_CONFIG_PATH; environment
// variables win over the file.
func Load(path string) (Config, error) {
	cfg := Config{
		Workspace: WorkspaceConfig{
			Root: defaultWorkspaceRoot(),
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8391,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path == "" {
		path = os.Getenv("PARLEY_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if root := os.Getenv("PARLEY_WORKSPACE_ROOT"); root != "" {
		cfg.Workspace.Root = root
	}
	if host := os.Getenv("PARLEY_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PARLEY_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PARLEY_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("PARLEY_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath := os.Getenv("PARLEY_SESSIONS_DB"); dbPath != "" {
		cfg.Sessions.DBPath = dbPath
	}
	if level := os.Getenv("PARLEY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Sessions.DBPath == "" {
		cfg.Sessions.DBPath = filepath.Join(cfg.Workspace.Root, "sessions.db")
	}

	return cfg, nil
}

func defaultWorkspaceRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Parley")
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
