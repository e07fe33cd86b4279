package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube  YouTubeConfig  `yaml:"youtube"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Channels []string       `yaml:"channels"`
	Email    EmailConfig    `yaml:"email"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Schedule string         `yaml:"schedule"`
}

type YouTubeConfig struct {
	APIKey       string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	ClientID     string `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	TokenFile    string `yaml:"token_file"`
	MaxComments  int    `yaml:"max_comments"`
}

type AnalysisConfig struct {
	MaxVideos   int    `yaml:"max_videos"`
	FetchVideos int    `yaml:"fetch_videos"`
	Concurrency int    `yaml:"concurrency"`
	HookDivisor string `yaml:"hook_divisor"` // "categories" or "matched"
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type ServerConfig struct {
	Port           int           `yaml:"port"`
	HealthPort     int           `yaml:"health_port"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type StorageConfig struct {
	DataDir  string        `yaml:"data_dir"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Load reads CONFIG_FILE (default config.yaml), then fills secrets from the
// environment and applies defaults. A missing config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Environment and defaults only
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.YouTube.ClientID == "" {
		c.YouTube.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if c.YouTube.ClientSecret == "" {
		c.YouTube.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if c.Email.Username == "" {
		c.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if c.Email.Password == "" {
		c.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}
}

func (c *Config) applyDefaults() {
	if c.YouTube.TokenFile == "" {
		c.YouTube.TokenFile = "youtube_token.json"
	}
	if c.YouTube.MaxComments == 0 {
		c.YouTube.MaxComments = 100
	}
	if c.Analysis.MaxVideos == 0 {
		c.Analysis.MaxVideos = 20
	}
	if c.Analysis.FetchVideos == 0 {
		c.Analysis.FetchVideos = 50
	}
	if c.Analysis.Concurrency == 0 {
		c.Analysis.Concurrency = 4
	}
	if c.Analysis.HookDivisor == "" {
		c.Analysis.HookDivisor = "categories"
	}
	if c.Email.SMTPServer == "" {
		c.Email.SMTPServer = "smtp.gmail.com"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.HealthPort == 0 {
		c.Server.HealthPort = 8080
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 60 * time.Second
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Storage.CacheTTL == 0 {
		c.Storage.CacheTTL = time.Hour
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Schedule == "" {
		c.Schedule = "0 0 9 * * *" // Daily at 9 AM
	}
}

func (c *Config) validate() error {
	if c.Analysis.MaxVideos < 0 {
		return fmt.Errorf("analysis.max_videos must be positive, got %d", c.Analysis.MaxVideos)
	}
	if c.Analysis.Concurrency < 0 {
		return fmt.Errorf("analysis.concurrency must be positive, got %d", c.Analysis.Concurrency)
	}
	if c.Analysis.HookDivisor != "categories" && c.Analysis.HookDivisor != "matched" {
		return fmt.Errorf("analysis.hook_divisor must be \"categories\" or \"matched\", got %q", c.Analysis.HookDivisor)
	}
	if c.Storage.CacheTTL < 0 {
		return fmt.Errorf("storage.cache_ttl must not be negative")
	}
	return nil
}

// ValidateFetch checks the credentials needed to call the YouTube Data API.
func (c *Config) ValidateFetch() error {
	if c.YouTube.APIKey != "" {
		return nil
	}
	if c.YouTube.ClientID == "" {
		return fmt.Errorf("YouTube API key or client ID is required (set YOUTUBE_API_KEY or GOOGLE_CLIENT_ID)")
	}
	if c.YouTube.ClientSecret == "" {
		return fmt.Errorf("YouTube client secret is required (set GOOGLE_CLIENT_SECRET or youtube.client_secret)")
	}
	return nil
}

// ValidateEmail checks the settings needed to send the digest.
func (c *Config) ValidateEmail() error {
	if c.Email.Username == "" {
		return fmt.Errorf("Email username is required (set EMAIL_USERNAME or email.username)")
	}
	if c.Email.Password == "" {
		return fmt.Errorf("Email password is required (set EMAIL_PASSWORD or email.password)")
	}
	if c.Email.ToEmail == "" {
		return fmt.Errorf("Email recipient is required (set email.to_email)")
	}
	return nil
}
