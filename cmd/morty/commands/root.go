package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/technopolitica/morty/internal/client"
	"github.com/technopolitica/morty/internal/config"
)

var (
	upstreamURL string
	timeout     time.Duration
	asJSON      bool
	catalog     *client.Client
)

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Config{UpstreamURL: client.DefaultBaseURL, UpstreamTimeout: 10 * time.Second}
	}

	root := &cobra.Command{
		Use:          "morty",
		Short:        "Browse the Rick and Morty character catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			catalog, err = client.New(upstreamURL, client.WithTimeout(timeout), client.WithUserAgent("morty-cli"))
			return
		},
	}

	root.PersistentFlags().StringVar(&upstreamURL, "upstream-url", cfg.UpstreamURL, "base URL of the character catalog API")
	root.PersistentFlags().DurationVar(&timeout, "timeout", cfg.UpstreamTimeout, "timeout for a single catalog request")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	root.AddCommand(charactersCmd(), characterCmd(), episodesCmd(), tabsCmd())
	return root
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printTable(out io.Writer, header []string, rows [][]string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
	return w.Flush()
}

func linkOrDash(link *string) string {
	if link == nil {
		return "-"
	}
	return *link
}
