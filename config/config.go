package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	globalConfig Config
	once         sync.Once
)

// Config holds the flattened application configuration. Values come from
// a .env file if present, then environment variables, then defaults.
type Config struct {
	ServerHost         string        `mapstructure:"server_host"`
	ServerPort         int           `mapstructure:"server_port"`
	ServerReadTimeout  time.Duration `mapstructure:"server_read_timeout"`
	ServerWriteTimeout time.Duration `mapstructure:"server_write_timeout"`
	ServerIdleTimeout  time.Duration `mapstructure:"server_idle_timeout"`

	DBFilePath        string `mapstructure:"db_file_path"`
	DBMaxOpenConns    int    `mapstructure:"db_max_open_conns"`
	DBMaxIdleConns    int    `mapstructure:"db_max_idle_conns"`
	DBConnMaxLifetime int    `mapstructure:"db_conn_max_lifetime"`

	UploadDir       string `mapstructure:"upload_dir"`
	UploadMaxSizeMB int    `mapstructure:"upload_max_size_mb"`

	// AdminPassword may be plain text or a bcrypt hash ($2a$/$2b$ prefix).
	AdminPassword string `mapstructure:"admin_password"`
	SessionSecret string `mapstructure:"session_secret"`

	LoginRateRPS   float64       `mapstructure:"login_rate_rps"`
	LoginRateBurst int           `mapstructure:"login_rate_burst"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

const (
	// Insecure local-development fallbacks. Startup warns when either is
	// still in use.
	DefaultAdminPassword = "admin123"
	DefaultSessionSecret = "carlot-dev-session-secret"
)

// InitConfig loads the configuration exactly once.
func InitConfig() {
	once.Do(loadConfig)
}

func Get() *Config {
	return &globalConfig
}

func loadConfig() {
	setDefaults()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Info: .env file not found, using defaults and environment variables")
	} else {
		fmt.Fprintln(os.Stderr, "Info: Loaded configuration from .env file")
	}

	viper.AutomaticEnv()
	for _, key := range viper.AllKeys() {
		viper.BindEnv(key)
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: Unable to unmarshal config, %v\n", err)
		os.Exit(1)
	}
}

func setDefaults() {
	viper.SetDefault("server_host", "0.0.0.0")
	viper.SetDefault("server_port", 8080)
	viper.SetDefault("server_read_timeout", "15s")
	viper.SetDefault("server_write_timeout", "30s")
	viper.SetDefault("server_idle_timeout", "120s")

	viper.SetDefault("db_file_path", "./data/carlot.db")
	viper.SetDefault("db_max_open_conns", 10)
	viper.SetDefault("db_max_idle_conns", 5)
	viper.SetDefault("db_conn_max_lifetime", 3600)

	viper.SetDefault("upload_dir", "./data/uploads")
	viper.SetDefault("upload_max_size_mb", 20)

	viper.SetDefault("admin_password", DefaultAdminPassword)
	viper.SetDefault("session_secret", DefaultSessionSecret)

	viper.SetDefault("login_rate_rps", 0.5)
	viper.SetDefault("login_rate_burst", 5)
	viper.SetDefault("session_ttl", "168h") // 7 days, fixed window
}

// Addr returns the listen address as "host:port".
func (c *Config) Addr() string {
	host := c.ServerHost
	if host == "" {
		host = "0.0.0.0"
	}
	port := c.ServerPort
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// UsingInsecureDefaults reports whether the admin password or session secret
// is still the built-in development value.
func (c *Config) UsingInsecureDefaults() bool {
	return c.AdminPassword == DefaultAdminPassword || c.SessionSecret == DefaultSessionSecret
}
