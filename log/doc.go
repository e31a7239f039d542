// Package log contains default logger interface with it's subcomponents. It is used by all packages to log
// all messages.
// The subcomponents allows to set different logger instance for some components, i.e. the mutator catalog
// bootstrap can log on the 'debug3' level while the rest of the program stays on 'info'.
//
// The package wraps the 'github.com/neuronlabs/uni-logger' leveled loggers. Until the logger is set
// with SetLogger, New or Default functions, nothing is being logged.
package log
