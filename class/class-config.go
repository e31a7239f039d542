package class

import (
	"github.com/maxgabut/pitest/errors"
)

// MjrConfig classifies the configuration errors.
var MjrConfig errors.Major

// Config reading classes.
var (
	MnrConfigRead errors.Minor

	// ConfigReadNotFound is used when no config file exists at the searched locations.
	ConfigReadNotFound errors.Class
	// ConfigReadInvalid is used when the config file could not be parsed or decoded.
	ConfigReadInvalid errors.Class
)

// Config value classes.
var (
	MnrConfigValue errors.Minor

	ConfigValueNil errors.Class
	// ConfigValueInvalid is used for the values rejected by the validation,
	// i.e. unsupported naming convention or log level.
	ConfigValueInvalid errors.Class
)

func registerConfigClasses() {
	MjrConfig = errors.MustNewMajor()
	registerMinor(MjrConfig, &MnrConfigRead, &ConfigReadNotFound, &ConfigReadInvalid)
	registerMinor(MjrConfig, &MnrConfigValue, &ConfigValueNil, &ConfigValueInvalid)
}
