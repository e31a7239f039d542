// Package mutator contains the catalog of the mutation operators and the resolution of the
// requested mutator names.
//
// The catalog maps the names of single mutators and named groups of mutators to the ordered
// sequences of operators. It is built once by the Builder and frozen into the immutable Catalog,
// which might be used concurrently without any synchronization.
//
// The resolution of the requested names deduplicates the operators by their identifiers
// and orders them by the identifier, so that the same set of operators is always returned
// in the same order, no matter the order of the requests.
package mutator
