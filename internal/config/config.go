package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix      = "HRCTL"
	configDirName  = "hrctl"
	configFileName = "config.yaml"
)

var ErrNoConfigFile = errors.New("no config file found")

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	RateBurst int           `mapstructure:"rate_burst"`
}

type AuthConfig struct {
	Email          string        `mapstructure:"email"`
	RefreshPath    string        `mapstructure:"refresh_path"`
	RefreshLeeway  time.Duration `mapstructure:"refresh_leeway"`
	RefreshTimeout time.Duration `mapstructure:"refresh_timeout"`
	TOTPSecret     string        `mapstructure:"totp_secret"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	Key         string        `mapstructure:"key"`
	TTL         time.Duration `mapstructure:"ttl"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type SSMConfig struct {
	Region          string `mapstructure:"region"`
	Profile         string `mapstructure:"profile"`
	Parameter       string `mapstructure:"parameter"`
	KMSKey          string `mapstructure:"kms_key"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type StoreConfig struct {
	Driver     string      `mapstructure:"driver"`
	Path       string      `mapstructure:"path"`
	Passphrase string      `mapstructure:"passphrase"`
	Redis      RedisConfig `mapstructure:"redis"`
	SSM        SSMConfig   `mapstructure:"ssm"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Store   StoreConfig   `mapstructure:"store"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Path is the file the configuration was read from, or the default
	// location Save writes to.
	Path string `mapstructure:"-"`
}

// DefaultDir is ~/.config/hrctl.
func DefaultDir() (string, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".config", configDirName), nil
}

// Load merges defaults, the YAML file, a .env file in the working directory,
// HRCTL_* environment variables and the bound flags, in increasing order of
// precedence. A missing config file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, dir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, configFileName)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var flagBindings = map[string]string{
	"api.base_url": "base-url",
	"api.timeout":  "timeout",
	"log.level":    "log-level",
	"log.pretty":   "log-pretty",
	"store.driver": "store",
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("api.base_url", "http://localhost:8000/api")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.rate_limit", 0)
	v.SetDefault("api.rate_burst", 5)

	v.SetDefault("auth.email", "")
	v.SetDefault("auth.refresh_path", "/auth/token/refresh/")
	v.SetDefault("auth.refresh_leeway", "0s")
	v.SetDefault("auth.refresh_timeout", "30s")
	v.SetDefault("auth.totp_secret", "")

	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", filepath.Join(dir, "credentials.yaml"))
	v.SetDefault("store.passphrase", "")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.key", "hrctl:session")
	v.SetDefault("store.redis.ttl", "0s")
	v.SetDefault("store.redis.max_attempts", 3)
	v.SetDefault("store.ssm.region", "")
	v.SetDefault("store.ssm.profile", "")
	v.SetDefault("store.ssm.parameter", "/hrctl/session")
	v.SetDefault("store.ssm.kms_key", "")
	v.SetDefault("store.ssm.access_key_id", "")
	v.SetDefault("store.ssm.secret_access_key", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)

	v.SetDefault("metrics.textfile", "")
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "file", "redis", "ssm":
	default:
		return fmt.Errorf("unknown store driver %q (want memory, file, redis or ssm)", c.Store.Driver)
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	return nil
}

// Save writes the user editable settings back to c.Path. Secrets from the
// environment are never persisted.
func (c *Config) Save(fsys afero.Fs) error {
	dir := filepath.Dir(c.Path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c.persisted())
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := afero.WriteFile(fsys, c.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

type persistedConfig struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Auth struct {
		Email         string `yaml:"email,omitempty"`
		RefreshLeeway string `yaml:"refresh_leeway,omitempty"`
	} `yaml:"auth"`
	Store struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path,omitempty"`
	} `yaml:"store"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func (c *Config) persisted() persistedConfig {
	var p persistedConfig
	p.API.BaseURL = c.API.BaseURL
	p.API.Timeout = c.API.Timeout.String()
	p.Auth.Email = c.Auth.Email
	if c.Auth.RefreshLeeway > 0 {
		p.Auth.RefreshLeeway = c.Auth.RefreshLeeway.String()
	}
	p.Store.Driver = c.Store.Driver
	if c.Store.Driver == "file" {
		p.Store.Path = c.Store.Path
	}
	p.Log.Level = c.Log.Level
	return p
}
