package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"sync"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var cfg *Config
var once sync.Once

// Config is the configuration for the application
type Config struct {
	Server
	PostgreSQL
	Process
	Log
	Metrics
}

// Process configures the periodic name conflict audit.
type Process struct {
	Interval string `env:"PROCESS_INTERVAL" envDefault:"10"`
}

// IntervalMinutes parses Interval as a positive number of minutes.
func (p Process) IntervalMinutes() (int, error) {
	minutes, err := strconv.Atoi(p.Interval)
	if err != nil {
		return 0, fmt.Errorf("process interval %q: %w", p.Interval, err)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("process interval must be positive, got %d", minutes)
	}
	return minutes, nil
}

// Server is the configuration for the server
type Server struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// Addr returns the address for the server
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", "0.0.0.0", s.Port)
}

// PostgreSQL is the configuration for the database
type PostgreSQL struct {
	Driver          string `env:"DB_DRIVER" envDefault:"postgres"`
	Host            string `env:"DB_HOST" envDefault:"localhost"`
	Port            string `env:"DB_PORT" envDefault:"5432"`
	Database        string `env:"DB_DATABASE" envDefault:"encounter_types"`
	Username        string `env:"DB_USERNAME" envDefault:"encounter_types"`
	Password        string `env:"DB_PASSWORD" envDefault:"encounter_types"`
	SSLMode         string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConnAttempts string `env:"DB_MAX_CONN_ATTEMPTS" envDefault:"5"`
}

// DSN returns the DSN for the database
func (c PostgreSQL) DSN() string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s?sslmode=%s",
		DriverPostgres,
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.SSLMode,
	)
}

// InMemory reports whether the directory should live in process memory instead of PostgreSQL.
func (c PostgreSQL) InMemory() bool {
	return c.Driver == DriverMemory
}

// Log is the configuration for the logger
type Log struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	File    string `env:"LOG_FILE" envDefault:""`
	Console string `env:"LOG_CONSOLE" envDefault:"true"`
}

// ConsoleEnabled reports whether human readable console output is requested.
func (l Log) ConsoleEnabled() bool {
	enabled, err := strconv.ParseBool(l.Console)
	return err == nil && enabled
}

type Metrics struct {
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"encounter_types"`
}

// Load loads the configuration from environment variables
func Load() *Config {
	once.Do(func() {
		cfg = loadFromEnv()
	})

	return cfg
}

// loadFromEnv fills every string field of every Config section from its env tag.
func loadFromEnv() *Config {
	c := &Config{}
	cfgType := reflect.TypeOf(*c)
	cfgValue := reflect.ValueOf(c).Elem()

	for i := 0; i < cfgType.NumField(); i++ {
		field := cfgType.Field(i)
		fieldValue := cfgValue.Field(i)
		for j := 0; j < field.Type.NumField(); j++ {
			subField := field.Type.Field(j)
			envVar := subField.Tag.Get("env")
			envDefault := subField.Tag.Get("envDefault")
			value := getEnv(envVar, envDefault)

			fieldValue.Field(j).SetString(value)
		}
	}

	return c
}

// getEnv retrieves the value of the environment variable named by the key or returns the defaultValue if not set
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
	}
	return value
}
