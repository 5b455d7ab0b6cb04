package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	VAT      VATConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// VATConfig holds the per-service-type VAT rate (percent). Oil change and
// battery replacement are additive; other-service extracts from inclusive
// prices. Flow-dependent, not a global constant.
type VATConfig struct {
	OilChange          float64
	BatteryReplacement float64
	OtherService       float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("VAT_OIL_CHANGE", 5.0)
	viper.SetDefault("VAT_BATTERY_REPLACEMENT", 15.0)
	viper.SetDefault("VAT_OTHER_SERVICE", 5.0)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		VAT: VATConfig{
			OilChange:          viper.GetFloat64("VAT_OIL_CHANGE"),
			BatteryReplacement: viper.GetFloat64("VAT_BATTERY_REPLACEMENT"),
			OtherService:       viper.GetFloat64("VAT_OTHER_SERVICE"),
		},
	}

	return config, nil
}
