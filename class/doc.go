// Package class registers the error classifications used across the repository.
// Each domain has its own major: Common, Config and Mutator. The classes are registered
// in the package init, in a fixed order, so their values are stable within a build.
package class
