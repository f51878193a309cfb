package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/technopolitica/morty/internal/domain"
)

var episodeHeader = []string{"ID", "CODE", "NAME", "AIR DATE", "CHARACTERS"}

func episodeRows(episodes []domain.Episode) (rows [][]string) {
	for _, episode := range episodes {
		rows = append(rows, []string{
			strconv.Itoa(episode.ID),
			episode.SeasonEpisode,
			episode.Name,
			episode.AirDate,
			strconv.Itoa(len(episode.CharacterIDs)),
		})
	}
	return
}

func episodesCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List a page of episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			episodePage, err := catalog.GetEpisodePage(cmd.Context(), page)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, episodePage)
			}
			err = printTable(out, episodeHeader, episodeRows(episodePage.Episodes))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\npage %d of %d (%d episodes)\n", page, episodePage.Info.Pages, episodePage.Info.Count)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to fetch (1-based)")
	return cmd
}
