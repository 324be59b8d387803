package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3080
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "modelmart"
	defaultDBCharset  = "utf8mb4"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultSiteTitle  = "ModelMart"
	defaultSiteURL    = "http://localhost:3080"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	DSN            string         `yaml:"dsn"` // MySQL DSN, overrides Database when set
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	JWTSecret      string         `yaml:"jwt_secret"`
	Site           SiteConfig     `yaml:"site"`
}

// SiteConfig holds the public-facing site metadata used by syndication feeds.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// Load reads the YAML config at path, filling unset fields with defaults and
// environment fallbacks. A missing file yields a default config.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := &AppConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = envOr("APP_ENV", defaultEnv)
	}
	if c.RedisURL == "" {
		c.RedisURL = envOr("REDIS_URL", defaultRedisURL)
	}
	if c.DSN == "" {
		c.DSN = envOr("DATABASE_DSN", "")
	}
	if c.JWTSecret == "" {
		c.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if c.Site.Title == "" {
		c.Site.Title = defaultSiteTitle
	}
	if c.Site.URL == "" {
		c.Site.URL = envOr("SITE_URL", defaultSiteURL)
	}

	db := &c.Database
	if db.Host == "" {
		db.Host = envOr("DB_HOST", defaultDBHost)
	}
	if db.Port == 0 {
		db.Port = defaultDBPort
	}
	if db.User == "" {
		db.User = envOr("DB_USER", defaultDBUser)
	}
	if db.Password == "" {
		db.Password = envOr("DB_PASSWORD", defaultDBPassword)
	}
	if db.Name == "" {
		db.Name = envOr("DB_NAME", defaultDBName)
	}
	if db.Charset == "" {
		db.Charset = defaultDBCharset
	}
}

// ResolveDSN returns the MySQL DSN, building one from the database section
// when no explicit DSN was configured.
func (c *AppConfig) ResolveDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	db := c.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		db.User, db.Password, db.Host, db.Port, db.Name, db.Charset)
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
