package commands

import (
	"github.com/spf13/cobra"

	"github.com/technopolitica/morty/internal/navigation"
)

func tabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the top-level navigation destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, navigation.Destinations)
			}
			var rows [][]string
			for _, destination := range navigation.Destinations {
				rows = append(rows, []string{destination.Tab.String(), destination.Title, destination.Icon, destination.Route})
			}
			return printTable(out, []string{"TAB", "TITLE", "ICON", "ROUTE"}, rows)
		},
	}
}
