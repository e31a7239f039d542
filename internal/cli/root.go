// Package cli defines the commands of the pitest-mutators tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/config"
	"github.com/maxgabut/pitest/errors"
	"github.com/maxgabut/pitest/help"
	"github.com/maxgabut/pitest/log"
	"github.com/maxgabut/pitest/mutator"
	"github.com/maxgabut/pitest/mutators"
)

// app is the state shared by the commands, loaded before any sub command runs.
type app struct {
	configPath string
	naming     string
	strict     bool

	config  *config.Config
	catalog *mutator.Catalog
	printer *help.Printer
}

// NewRootCommand creates the root command with all its sub commands.
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "pitest-mutators",
		Short:             "Lists and resolves the pitest mutation operators.",
		Long:              `It lists the registered mutator and group names and resolves them into the set of mutation operators.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&a.naming, "naming", "n", "", "naming convention of the listed names. Possible values: screaming, snake, kebab, camel, lowercamel")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "fail when a name is registered twice with different operators")

	rootCmd.AddCommand(a.listCommand(), a.resolveCommand(), a.describeCommand())
	return rootCmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	err := a.setup(cmd)
	if err != nil && errors.IsMajor(err, class.MjrConfig) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.config, err = config.ReadConfigFile(a.configPath)
		if err != nil {
			return err
		}
	} else {
		a.config = config.ReadDefaultConfig()
	}

	if cmd.Flags().Changed("naming") {
		a.config.NamingConvention = a.naming
	}
	if cmd.Flags().Changed("strict") {
		a.config.StrictRegistration = a.strict
	}
	if err = a.config.Validate(); err != nil {
		return err
	}
	if err = a.config.SetLogLevel(); err != nil {
		return err
	}

	n, err := a.config.Namer()
	if err != nil {
		return err
	}
	a.printer = help.New(a.config.LanguageTag(), n)

	a.catalog, err = mutators.NewCatalogFromConfig(a.config)
	if err != nil {
		return err
	}
	log.Debugf("Loaded catalog with: %d names", a.catalog.Len())
	return nil
}

// unknown converts the resolution error into the user facing error.
func (a *app) unknown(err error) error {
	if _, ok := mutator.UnknownName(err); ok {
		return fmt.Errorf("%s", a.printer.UnknownMutator(err, a.catalog))
	}
	return err
}
