// Package config loads the haibun configuration file, with flag and
// environment overrides. On first run the file does not exist yet; a
// commented default is written and the program asks to be re-run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrCreated reports that a default config file was just written and needs
// to be filled in before the program can do anything useful.
var ErrCreated = errors.New("config file created")

// Database holds the Postgres connection settings.
type Database struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	DBName   string `mapstructure:"dbname" yaml:"dbname"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	SSLMode  string `mapstructure:"sslmode" yaml:"sslmode"`
}

// ConnString renders the lib/pq key/value connection string.
func (d Database) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CSV describes the portfolio export format: which marker to strip from
// values, how many banner/footer rows to drop, and which 1-based columns
// hold the item name and the value.
type CSV struct {
	Currency    string `mapstructure:"currency" yaml:"currency"`
	SkipRows    int    `mapstructure:"skiprows" yaml:"skiprows"`
	StopRows    int    `mapstructure:"stoprows" yaml:"stoprows"`
	ItemColumn  int    `mapstructure:"item_column" yaml:"item_column"`
	ValueColumn int    `mapstructure:"value_column" yaml:"value_column"`
}

// Config is the whole configuration file.
type Config struct {
	Database Database `mapstructure:"database" yaml:"database"`
	CSV      CSV      `mapstructure:"csv" yaml:"csv"`
}

func defaults() Config {
	return Config{
		Database: Database{
			Host:     "127.0.0.1",
			Port:     5432,
			DBName:   "database_name",
			User:     "postgres_user",
			Password: "postgres_password",
			SSLMode:  "disable",
		},
		CSV: CSV{
			ItemColumn:  1,
			ValueColumn: 2,
		},
	}
}

// DefaultPath is the config file location used when no --config flag is
// given: the user config dir, e.g. ~/.config/haibun/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "haibun", "config.yaml"), nil
}

// csv.* keys that command flags may override.
var flagBindings = map[string]string{
	"csv.currency":     "currency",
	"csv.skiprows":     "skip-rows",
	"csv.stoprows":     "stop-rows",
	"csv.item_column":  "item-column",
	"csv.value_column": "value-column",
}

// Build loads the configuration from cfgFile (or the default path), applies
// HAIBUN_* environment overrides and any changed command flags. A missing
// file at the default path is created with defaults and reported via
// ErrCreated.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if cfgFile == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		cfgFile = path
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			if err := writeDefault(cfgFile); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w at %s, please update it and re-run", ErrCreated, cfgFile)
		}
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)

	def := defaults()
	v.SetDefault("database.host", def.Database.Host)
	v.SetDefault("database.port", def.Database.Port)
	v.SetDefault("database.dbname", def.Database.DBName)
	v.SetDefault("database.user", def.Database.User)
	v.SetDefault("database.password", def.Database.Password)
	v.SetDefault("database.sslmode", def.Database.SSLMode)
	v.SetDefault("csv.currency", def.CSV.Currency)
	v.SetDefault("csv.skiprows", def.CSV.SkipRows)
	v.SetDefault("csv.stoprows", def.CSV.StopRows)
	v.SetDefault("csv.item_column", def.CSV.ItemColumn)
	v.SetDefault("csv.value_column", def.CSV.ValueColumn)

	v.SetEnvPrefix("HAIBUN")
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

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(defaults())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}
