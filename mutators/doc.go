// Package mutators contains the built-in mutation operators and the reference catalog
// composed of them.
//
// The operators defined here are only the identities used by the catalog. The transformations
// are provided by the mutation engine, which looks them up by the operator identifier.
//
// The reference catalog is built on the first use and shared for the process lifetime:
//
//	ops, err := mutators.Resolve("DEFAULTS", "REMOVE_CONDITIONALS")
//
// An owned catalog might be built with the NewCatalog function and injected wherever needed.
package mutators
