package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxgabut/pitest/help"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the registered mutator and group names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.printer.Listing(a.catalog))
			return err
		},
	}
}

func (a *app) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [NAME...]",
		Short: "Resolves the names into the set of mutation operators.",
		Long: `Resolves the mutator and group names into the deduplicated set of mutation operators ordered by their identifiers.
If no names are provided the configured mutators are resolved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.config.Mutators = args
			}
			set, err := a.config.Resolve(a.catalog)
			if err != nil {
				return a.unknown(err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.printer.Operators(set))
			return err
		},
	}
}

func (a *app) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Describes the operators registered under the name.",
		Long:  `Describes the operators registered under the name in the order of their registration.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.config.Mutators = args
			name := a.config.RequestedNames(a.catalog)[0]
			if _, err := a.catalog.ByName(name); err != nil {
				return a.unknown(err)
			}
			operators, _ := a.catalog.Entry(name)

			sb := &strings.Builder{}
			fmt.Fprintf(sb, "%s:\n", name)
			for _, op := range operators {
				sb.WriteString("  ")
				sb.WriteString(op.ID())
				if d, ok := op.(help.Describer); ok {
					sb.WriteString(" - ")
					sb.WriteString(d.Description())
				}
				sb.WriteString("\n")
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
