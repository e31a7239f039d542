// Package config contains the configuration of the mutator catalog consumers.
// The configuration is read with the 'github.com/spf13/viper' from the files, i.e. 'pitest.yaml',
// and the environment variables with the 'PITEST_' prefix.
package config
