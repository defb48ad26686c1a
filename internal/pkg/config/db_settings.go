package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	MysqlDbType    = "mysql"
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// EnvTest is the HBNB_ENV value that resets the schema on every reload.
const EnvTest = "test"

// DefaultDBHost is used when HBNB_MYSQL_HOST is unset.
const DefaultDBHost = "localhost"

// DatabaseSettings holds the connection settings of the backing store
type DatabaseSettings struct {
	Type     string `mapstructure:"type" validate:"required,oneof=mysql postgres sqlite"`
	DSN      string `mapstructure:"dsn"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	switch s.Type {
	case MysqlDbType:
		if s.DSN == "" && (s.User == "" || s.Name == "") {
			return fmt.Errorf("user and database name are required for mysql")
		}
	case PostgresDbType:
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for postgres")
		}
	}

	return nil
}

// URL assembles the MySQL connection string from user, password, host and database name.
func (s *DatabaseSettings) URL() string {
	host := s.Host
	if host == "" {
		host = DefaultDBHost
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		s.User, s.Password, host, s.Name)
}

// ConnectionString returns the DSN handed to the driver.
func (s *DatabaseSettings) ConnectionString() string {
	if s.DSN != "" {
		return s.DSN
	}
	switch s.Type {
	case MysqlDbType:
		return s.URL()
	case SqliteDbType:
		return ":memory:"
	default:
		return ""
	}
}

// IsTestEnv reports whether reloads should drop and recreate the schema.
func (s *DatabaseSettings) IsTestEnv() bool {
	return s.Env == EnvTest
}
