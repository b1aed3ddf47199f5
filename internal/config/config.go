package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// formFieldsBytes is the room left for non-file fields in a multipart body
const formFieldsBytes = 1 << 20

// Config structure represents the application configuration.
// Env tags may list several variables; the first one that is set wins.
type Config struct {
	Server struct {
		Port        string   `yaml:"port" env:"SERVER_PORT,PORT"`
		Mode        string   `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string   `yaml:"storage_path" env:"STORAGE_PATH"`
		MaxUploadMB int      `yaml:"max_upload_mb" env:"MAX_UPLOAD_MB"`
		CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST,HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER,USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD,PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME,DATABASE"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		ConnectTimeout  string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		StudentKey      string `yaml:"student_key" env:"STUDENT_KEY"`
		TeacherKey      string `yaml:"teacher_key" env:"TEACHER_KEY"`
		AdminKey        string `yaml:"admin_key" env:"ADMIN_KEY"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		AdminName     string   `yaml:"admin_name" env:"SEED_ADMIN_NAME"`
		AdminEmail    string   `yaml:"admin_email" env:"SEED_ADMIN_EMAIL"`
		AdminPassword string   `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
		Departments   []string `yaml:"departments" env:"SEED_DEPARTMENTS"`
		Categories    []string `yaml:"categories" env:"SEED_CATEGORIES"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from defaults, an optional YAML file, an
// optional .env file and the process environment, in that order.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.MaxUploadMB = 8
	config.Server.CORSOrigins = []string{"http://localhost:3000"}

	config.Database.Host = "localhost"
	config.Database.Port = "3306"
	config.Database.User = "root"
	config.Database.DBName = "coursehub"
	config.Database.MaxOpenConns = 10
	config.Database.MaxIdleConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.ConnectTimeout = "10s"

	config.JWT.TokenExpiration = "720h"
	config.JWT.Issuer = "coursehub"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.AdminName = "Super Admin"
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server max_upload_mb must be positive")
	}
	if config.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database max_open_conns must be positive")
	}

	for name, key := range map[string]string{
		"STUDENT_KEY": config.JWT.StudentKey,
		"TEACHER_KEY": config.JWT.TeacherKey,
		"ADMIN_KEY":   config.JWT.AdminKey,
	} {
		if key == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}
	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}
	if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid connect timeout: %w", err)
	}

	return nil
}

// MySQLDSN builds the driver DSN for the configured database
func (c *Config) MySQLDSN() string {
	timeout, _ := time.ParseDuration(c.Database.ConnectTimeout)

	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = c.Database.Host + ":" + c.Database.Port
	dsn.DBName = c.Database.DBName
	dsn.ParseTime = true
	// Report matched rather than changed rows so an UPDATE that rewrites
	// identical values is not mistaken for a missing row.
	dsn.ClientFoundRows = true
	dsn.Loc = time.UTC
	dsn.Timeout = timeout
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

// MaxUploadBytes is the largest accepted image upload, derived from MaxUploadMB
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

// MaxRequestBytes bounds a whole request body: one image plus its form fields
func (c *Config) MaxRequestBytes() int64 {
	return c.MaxUploadBytes() + formFieldsBytes
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
