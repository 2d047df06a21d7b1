package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		Provider string `yaml:"provider"` // openai | gemini
		APIKey   string `yaml:"apiKey"`
		Model    string `yaml:"model"`
	} `yaml:"ai"`

	History struct {
		Driver  string `yaml:"driver"` // file | mysql | postgres
		DataDir string `yaml:"dataDir"`

		Database struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Name     string `yaml:"name"`
			SSLMode  string `yaml:"sslMode"`
		} `yaml:"database"`
	} `yaml:"history"`

	Archive struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"archive"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Load reads the yaml config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.History.Driver == "" {
		c.History.Driver = "file"
	}
	if c.History.DataDir == "" {
		c.History.DataDir = "data"
	}
	if c.History.Database.SSLMode == "" {
		c.History.Database.SSLMode = "disable"
	}
}

// APIKey resolves the classifier credential: config value first, then the
// provider's conventional environment variable.
func (c *Config) APIKey() string {
	if k := strings.TrimSpace(c.AI.APIKey); k != "" {
		return k
	}
	switch c.AI.Provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}

// MySQLDSN builds the history database DSN for the mysql driver
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.History.Database.User,
		c.History.Database.Password,
		c.History.Database.Host,
		c.History.Database.Port,
		c.History.Database.Name,
	)
}

// PostgresDSN builds the history database DSN for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.History.Database.Host,
		c.History.Database.Port,
		c.History.Database.User,
		c.History.Database.Password,
		c.History.Database.Name,
		c.History.Database.SSLMode,
	)
}
