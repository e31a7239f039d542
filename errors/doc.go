// Package errors provides lightweight error handling and classification primitives.
//
// The package provides simple error handling interfaces and functions.
// It allows to create simple and detailed classified errors. Each classification
// is composed of the Major, Minor and Index parts that are registered once,
// usually in the init function of the package that defines given classes.
package errors
