package mutator

import (
	"github.com/maxgabut/pitest/log"
)

var logger = log.NewModuleLogger("mutator")
