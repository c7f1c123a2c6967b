package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port    int           `mapstructure:"port" default:"8000"`
	Mode    string        `mapstructure:"mode"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AppConfig carries application-level settings. BaseURL is the public origin
// used to compose booking links ({base-url}/{username}/{slug}); its value is
// rendered and copied verbatim, so it must not carry a trailing slash.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	JWTExpiryHours int    `mapstructure:"jwt_expiry_hours"`
	JWTIssuer      string `mapstructure:"jwt_issuer"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig(configPath string) (*Config, error) {
	var config Config

	// If CONFIG_FILE environment variable is set, use it
	if envConfigFile := os.Getenv("CONFIG_FILE"); envConfigFile != "" {
		configPath = envConfigFile
	}

	// Initialize viper
	v := viper.New()
	v.SetConfigType("yaml")

	// If configPath is provided, use it directly
	if configPath != "" {
		dir := filepath.Dir(configPath)
		file := filepath.Base(configPath)
		ext := filepath.Ext(file)
		name := strings.TrimSuffix(file, ext)

		v.AddConfigPath(dir)
		v.SetConfigName(name)
	} else {
		// Fallback to default locations
		_, filename, _, _ := runtime.Caller(0)
		pkgConfigDir := filepath.Dir(filename)
		projectRoot := filepath.Join(pkgConfigDir, "..", "..")

		v.AddConfigPath(pkgConfigDir)
		v.AddConfigPath(projectRoot)
		v.AddConfigPath(filepath.Join(projectRoot, "pkg", "config"))
		v.SetConfigName("config")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error loading config file: %v", err)
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Override with environment variables if they exist
	envVars := map[string]string{
		"server.port":       "SERVER_PORT",
		"server.mode":       "SERVER_MODE",
		"app.base_url":      "APP_BASE_URL",
		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.user":     "DB_USER",
		"database.password": "DB_PASSWORD",
		"database.name":     "DB_NAME",
		"database.sslmode":  "DB_SSLMODE",
		"redis.host":        "REDIS_HOST",
		"redis.port":        "REDIS_PORT",
		"redis.password":    "REDIS_PASSWORD",
		"auth.jwt_secret":   "JWT_SECRET",
	}
	for key, env := range envVars {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	if config.Server.Port == 0 {
		if port, err := strconv.Atoi(getEnv("PORT", "8000")); err == nil {
			config.Server.Port = port
		}
	}
	if config.Server.Timeout == 0 {
		config.Server.Timeout = 2 * time.Second
	}
	if config.App.BaseURL == "" {
		config.App.BaseURL = "https://calmarshal.com"
	}
	config.App.BaseURL = strings.TrimRight(config.App.BaseURL, "/")

	return &config, nil
}
