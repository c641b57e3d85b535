package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LEDGER"

type Config struct {
	Account    AccountConfig `mapstructure:"account"`
	ConfigPath string        `mapstructure:"-"`
}

// AccountConfig holds the metadata stamped on accounts created by the CLI.
type AccountConfig struct {
	Owner    string `mapstructure:"owner"`
	Currency string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		Account: AccountConfig{
			Owner:    "Anonymous",
			Currency: "EUR",
		},
	}
}

// Load reads the optional YAML file at path and applies LEDGER_* environment
// overrides on top of the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := NewDefault()
	v.SetDefault("account.owner", def.Account.Owner)
	v.SetDefault("account.currency", def.Account.Currency)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}
