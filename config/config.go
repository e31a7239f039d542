package config

import (
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/go-playground/validator.v9"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
	"github.com/maxgabut/pitest/log"
	"github.com/maxgabut/pitest/mutator"
	"github.com/maxgabut/pitest/namer"
)

var validate = validator.New()

// Config defines the configuration of the mutator catalog and the resolution of the requested mutators.
type Config struct {
	// Mutators are the requested mutator and group names. The names might be written in the
	// canonical form 'INVERT_NEGS' or any other case i.e. 'invert-negs' or 'invertNegs'.
	Mutators []string `mapstructure:"mutators" validate:"dive,required"`

	// LogLevel is the current logging level
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// StrictRegistration fails the catalog bootstrap when a name is registered twice with different operators.
	StrictRegistration bool `mapstructure:"strict_registration"`

	// NamingConvention is the naming convention used while listing the registered names.
	// Allowed values:
	// - screaming
	// - snake
	// - kebab
	// - camel
	// - lowercamel
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=screaming snake kebab camel lowercamel"`

	// Language is the BCP 47 language tag used for the user facing messages.
	Language string `mapstructure:"language"`
}

// Validate validates the config values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewDet(class.ConfigValueNil, "provided nil config")
	}
	if err := validate.Struct(c); err != nil {
		log.Debugf("Config validation failed: %v", err)
		return errors.NewDetf(class.ConfigValueInvalid, "invalid config: %v", err)
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return errors.NewDetf(class.ConfigValueInvalid, "invalid config language: '%s'", c.Language).WithDetail(err.Error())
		}
	}
	return nil
}

// LanguageTag gets the configured language tag. English is used if the language is not set.
func (c *Config) LanguageTag() language.Tag {
	if c == nil || c.Language == "" {
		return language.English
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		log.Warningf("Invalid config language: '%s'. Using english.", c.Language)
		return language.English
	}
	return tag
}

// Namer gets the namer.Namer for the configured naming convention.
func (c *Config) Namer() (namer.Namer, error) {
	return namer.Convention(c.NamingConvention)
}

// SetLogLevel sets the configured logging level if it is defined.
func (c *Config) SetLogLevel() error {
	if c.LogLevel == "" {
		return nil
	}
	return log.SetLevel(log.ParseLevel(c.LogLevel))
}

// RequestedNames gets the configured mutator names in the form registered in the 'catalog'.
// The names are matched regardless of their case and separators, so each listed naming convention
// is accepted, i.e. 'crcr-1' or 'invertNegs'. Unmatched names are returned as provided.
func (c *Config) RequestedNames(catalog *mutator.Catalog) []string {
	idx := namer.NewIndex(catalog.Names())
	names := make([]string, 0, len(c.Mutators))
	for _, raw := range c.Mutators {
		name := strings.TrimSpace(raw)
		if catalog.Has(name) {
			names = append(names, name)
			continue
		}
		if registered, ok := idx.Lookup(name); ok {
			name = registered
		}
		names = append(names, name)
	}
	return names
}

// Resolve resolves the configured mutator names with the provided 'catalog'.
// The first unknown name fails the whole resolution with the mutator.UnknownNameError.
func (c *Config) Resolve(catalog *mutator.Catalog) (mutator.Set, error) {
	names := c.RequestedNames(catalog)
	log.Debug2f("Resolving configured mutators: %v", names)
	return catalog.Resolve(names...)
}
