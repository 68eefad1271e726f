package main

import (
	"fmt"
	"sort"

	"github.com/aescanero/dago-node-template/internal/helpers"
	"github.com/spf13/cobra"
)

func newHelpersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "helpers",
		Short: "List registered helpers and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases := helpers.Aliases()
			byCanonical := make(map[string][]string)
			for alias, canonical := range aliases {
				byCanonical[canonical] = append(byCanonical[canonical], alias)
			}

			out := cmd.OutOrStdout()
			for _, name := range helpers.Names() {
				if _, isAlias := aliases[name]; isAlias {
					continue
				}
				names := byCanonical[name]
				if len(names) == 0 {
					fmt.Fprintln(out, name)
					continue
				}
				sort.Strings(names)
				fmt.Fprintf(out, "%s (aliases: %v)\n", name, names)
			}

			fmt.Fprintf(out, "operators: %v\n", helpers.Operators())
			return nil
		},
	}
}
