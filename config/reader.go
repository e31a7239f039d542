package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
	"github.com/maxgabut/pitest/log"
)

// ReadConfig reads the config named 'pitest' from the current directory or the 'configs' directory.
func ReadConfig() (*Config, error) {
	return ReadNamedConfig("pitest")
}

// ReadNamedConfig reads the config with the provided name from given 'paths'.
// If no paths are provided the current directory and the 'configs' directory are searched.
func ReadNamedConfig(name string, paths ...string) (*Config, error) {
	v := newViper()
	v.SetConfigName(name)

	if len(paths) == 0 {
		paths = []string{".", "configs"}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	return readConfig(v)
}

// ReadConfigFile reads the config from the file at 'path'. The config type is taken from the file extension.
func ReadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return readConfig(v)
}

// ReadDefaultConfig reads the default configuration overridden by the environment variables.
// Each call returns new config instance.
func ReadDefaultConfig() *Config {
	v := newViper()
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling default Config failed: %v", err)
		panic(err)
	}
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

func readConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			return nil, errors.NewDet(class.ConfigReadNotFound, "config file not found").WithDetail(err.Error())
		}
		log.Debugf("Reading config failed: %v", err)
		return nil, errors.NewDetf(class.ConfigReadInvalid, "reading config failed: %v", err)
	}
	log.Debugf("Using config file: %s", v.ConfigFileUsed())

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		return nil, errors.NewDetf(class.ConfigReadInvalid, "decoding config failed: %v", err)
	}
	if err := c.Validate(); err != nil {
		if det, ok := err.(*errors.DetailedError); ok {
			det.WrapDetailf("Config file: '%s'.", v.ConfigFileUsed())
		}
		return nil, err
	}
	return c, nil
}
