package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Pricing holds the adjustable business constants of the dashboard. They are
// configuration, not hard-coded literals, so a deployment can retune fees
// without a rebuild.
type Pricing struct {
	BaseOngkir       int64 `mapstructure:"base_ongkir"`
	MinOngkir        int64 `mapstructure:"min_ongkir"`
	SurchargeExpress int64 `mapstructure:"surcharge_express"`
	SurchargeSameDay int64 `mapstructure:"surcharge_same_day"`
}

// Validation holds the adjustable input rules for order creation.
type Validation struct {
	MinNameLen    int    `mapstructure:"min_name_len"`
	MinAddressLen int    `mapstructure:"min_address_len"`
	PhonePattern  string `mapstructure:"phone_pattern"`
}

// Config holds all application configuration.
type Config struct {
	ServerPort   string     `mapstructure:"SERVER_PORT"`
	DatabaseURL  string     `mapstructure:"DATABASE_URL"`
	JWTSecret    string     `mapstructure:"JWT_SECRET"`
	ClientOrigin string     `mapstructure:"CLIENT_ORIGIN"`
	Pricing      Pricing    `mapstructure:",squash"`
	Validation   Validation `mapstructure:",squash"`
}

// LoadConfig reads configuration from app.env in the given path, falling back
// to environment variables and defaults.
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CLIENT_ORIGIN", "http://localhost:3000")

	// Fee rules: base 15000 plus a fixed surcharge per tier, floor 5000.
	viper.SetDefault("base_ongkir", 15000)
	viper.SetDefault("min_ongkir", 5000)
	viper.SetDefault("surcharge_express", 5000)
	viper.SetDefault("surcharge_same_day", 10000)

	viper.SetDefault("min_name_len", 2)
	viper.SetDefault("min_address_len", 10)
	viper.SetDefault("phone_pattern", `^(\+62|62|0)[0-9]{9,13}$`)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file; environment variables and defaults apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}

// Surcharge returns the fixed fee surcharge for a service tier. Unknown tiers
// carry no surcharge.
func (p Pricing) Surcharge(serviceType string) int64 {
	switch serviceType {
	case "Express":
		return p.SurchargeExpress
	case "Same Day":
		return p.SurchargeSameDay
	default:
		return 0
	}
}

// SuggestedOngkir is the pre-filled delivery fee for a service tier.
func (p Pricing) SuggestedOngkir(serviceType string) int64 {
	return p.BaseOngkir + p.Surcharge(serviceType)
}
