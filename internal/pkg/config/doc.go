// Package config loads and validates the hbnb settings.
//
// Settings come from environment variables (HBNB_MYSQL_USER, HBNB_MYSQL_PWD,
// HBNB_MYSQL_HOST, HBNB_MYSQL_DB, HBNB_ENV, ...) and, optionally, a YAML file.
// Environment values take precedence over the file.
package config
