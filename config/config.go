package config

import (
	"server/internal/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Port             int    `mapstructure:"PORT"`
	DatabaseDbPath   string `mapstructure:"DATABASE_DB_PATH"`
	CorsAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
	SeedAdminEmail   string `mapstructure:"SEED_ADMIN_EMAIL"`
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	viper.SetDefault("PORT", 5000)
	viper.SetDefault("DATABASE_DB_PATH", "data/testbench.db")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("SEED_ADMIN_EMAIL", "")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("failed to unmarshal config", err)
	}

	return config, nil
}
