package class

import (
	"github.com/maxgabut/pitest/errors"
)

// MjrCommon classifies the errors not bound to the catalog domain.
var MjrCommon errors.Major

// Logger classes.
var (
	MnrCommonLogger errors.Minor

	// CommonLoggerNotImplement is used when the logger lacks a required capability, i.e. setting the level.
	CommonLoggerNotImplement errors.Class
	// CommonLoggerUnknownLevel is used for the level names that could not be parsed.
	CommonLoggerUnknownLevel errors.Class
)

func registerCommonClasses() {
	MjrCommon = errors.MustNewMajor()
	registerMinor(MjrCommon, &MnrCommonLogger, &CommonLoggerNotImplement, &CommonLoggerUnknownLevel)
}
