package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const CONFIG_NAME = "onroad.cfg.json"

// Load sets defaults, reads onroad.cfg.json from configDir when present and
// lets ONROAD_* environment variables override any key.
func Load(configDir string) error {
	viper.SetDefault("paths.params", "/data/params/d")
	viper.SetDefault("paths.memoryParams", "/dev/shm/params/d")
	viper.SetDefault("paths.assets", "../frogpilot/assets")
	viper.SetDefault("paths.themes", "/data/themes")

	viper.SetDefault("wheels.url", "https://raw.githubusercontent.com/FrogAi/FrogPilot-Resources/Steering-Wheels/")

	viper.SetDefault("window.width", 2160)
	viper.SetDefault("window.height", 1080)
	viper.SetDefault("window.fullscreen", false)

	viper.SetEnvPrefix("onroad")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(CONFIG_NAME)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "could not read config file")
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
