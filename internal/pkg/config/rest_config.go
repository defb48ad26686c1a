package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the settings of the REST API binary
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// envBindings maps configuration keys to the environment variables that set them.
var envBindings = map[string]string{
	"port":               "HBNB_API_PORT",
	"database.type":      "HBNB_DB_TYPE",
	"database.dsn":       "HBNB_DB_DSN",
	"database.user":      "HBNB_MYSQL_USER",
	"database.password":  "HBNB_MYSQL_PWD",
	"database.host":      "HBNB_MYSQL_HOST",
	"database.name":      "HBNB_MYSQL_DB",
	"database.env":       "HBNB_ENV",
	"logger.log_level":   "HBNB_LOG_LEVEL",
	"logger.log_type":    "HBNB_LOG_TYPE",
	"logger.file_path":   "HBNB_LOG_FILE",
	"logger.max_size":    "HBNB_LOG_MAX_SIZE",
	"logger.max_backups": "HBNB_LOG_MAX_BACKUPS",
	"logger.max_age":     "HBNB_LOG_MAX_AGE",
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()

	logDefaults := DefaultLoggerSettings()
	v.SetDefault("port", "5000")
	v.SetDefault("database.type", MysqlDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", DefaultDBHost)
	v.SetDefault("database.name", "")
	v.SetDefault("database.env", "")
	v.SetDefault("logger.log_level", logDefaults.LogLevel)
	v.SetDefault("logger.log_type", logDefaults.LogType)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", logDefaults.MaxSize)
	v.SetDefault("logger.max_backups", logDefaults.MaxBackups)
	v.SetDefault("logger.max_age", logDefaults.MaxAge)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return v, nil
}

// LoadDatabaseSettings reads the database settings from the environment
// and the optional config file at path.
func LoadDatabaseSettings(path string) (*DatabaseSettings, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	// UnmarshalKey on "database" would skip the env bindings of its sub-keys.
	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode database settings: %w", err)
	}

	settings := cfg.Database
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// InitializeRestConfig loads and validates the REST API configuration.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logger.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
