package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loadConfig resolves cfg. Precedence, lowest first: flag defaults, config
// file, environment (dotenv values included), explicitly set flags.
func loadConfig() error {
	if cfgEnvFile != "" {
		if err := godotenv.Load(cfgEnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", cfgEnvFile, err)
		}
	} else {
		// A .env next to the invocation is optional.
		_ = godotenv.Load()
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	cfg = configFromViper()
	return nil
}
