package database

import (
	"fmt"

	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the application configuration to database configuration.
// Values already present in LIB_DB_* variables take precedence.
func CreateConfigFromViperConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = conf.Database.Driver
	}
	if dbConf.Host == "" {
		dbConf.Host = conf.Database.Host
	}
	if p := ParsePort(conf.Database.Port); p > 0 {
		dbConf.Port = p
	}
	if dbConf.Username == "" {
		dbConf.Username = conf.Database.Username
	}
	if dbConf.Password == "" {
		dbConf.Password = conf.Database.Password
	}
	if dbConf.Database == "" {
		dbConf.Database = conf.Database.Database
	}
	if dbConf.Path == "" {
		dbConf.Path = conf.Database.Path
	}

	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.Database.ConnMaxIdleTime
	}
	if conf.Database.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.Database.QueryTimeout
	}
	if conf.Database.RetryAttempts >= 0 {
		dbConf.RetryAttempts = conf.Database.RetryAttempts
	}
	if conf.Database.RetryDelay > 0 {
		dbConf.RetryDelay = conf.Database.RetryDelay
	}
	if conf.Database.LogLevel != "" {
		dbConf.LogLevel = conf.Database.LogLevel
	}

	// SQLite allows a single writer; one shared connection keeps transactions from deadlocking.
	if dbConf.Driver == DriverSQLite {
		dbConf.MaxOpenConns = 1
		dbConf.MaxIdleConns = 1
	}

	return dbConf
}

// ParsePort converts a port string to an int, returning 0 when unset or invalid
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
