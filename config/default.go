package config

import (
	"github.com/spf13/viper"

	"github.com/maxgabut/pitest/mutator"
)

// EnvPrefix is the prefix of the environment variables read by the config.
const EnvPrefix = "PITEST"

func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"mutators":            []string{mutator.DefaultsGroup},
		"log_level":           "info",
		"strict_registration": false,
		"naming_convention":   "screaming",
		"language":            "en",
	}
	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
