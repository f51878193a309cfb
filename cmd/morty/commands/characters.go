package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/technopolitica/morty/internal/domain"
	"github.com/technopolitica/morty/internal/navigation"
)

func parseCharacterID(arg string) (id int, err error) {
	id, err = strconv.Atoi(arg)
	if err != nil {
		err = fmt.Errorf("invalid character id %q", arg)
		return
	}
	if errs := domain.ValidateCharacterID(id); len(errs) > 0 {
		err = fmt.Errorf("invalid character id %q: %s", arg, errs[0])
	}
	return
}

func characterRows(characters []domain.Character) (rows [][]string) {
	for _, character := range characters {
		rows = append(rows, []string{
			strconv.Itoa(character.ID),
			character.Name,
			character.Status.String(),
			character.Gender.String(),
			character.Species,
			character.Location.Name,
		})
	}
	return
}

var characterHeader = []string{"ID", "NAME", "STATUS", "GENDER", "SPECIES", "LOCATION"}

func charactersCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "characters",
		Short: "List a page of characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			characterPage, err := catalog.GetCharacterPage(cmd.Context(), page)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, characterPage)
			}
			err = printTable(out, characterHeader, characterRows(characterPage.Characters))
			if err != nil {
				return err
			}
			// Info.Prev mirrors Info.Next on character pages, so only next is shown.
			fmt.Fprintf(out, "\npage %d of %d (%d characters)\nnext: %s\n",
				page, characterPage.Info.Pages, characterPage.Info.Count,
				linkOrDash(characterPage.Info.Next))
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to fetch (1-based)")
	return cmd
}

func characterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Inspect a single character",
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a character's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCharacterID(args[0])
			if err != nil {
				return err
			}
			character, err := catalog.GetCharacter(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, character)
			}
			route := navigation.Route{Screen: navigation.ScreenCharacterDetails, CharacterID: id}
			fmt.Fprintf(out, "%s\n\n", route)
			return printTable(out, []string{"FIELD", "VALUE"}, [][]string{
				{"name", character.Name},
				{"status", character.Status.String()},
				{"gender", character.Gender.String()},
				{"species", character.Species},
				{"type", character.Type},
				{"origin", character.Origin.Name},
				{"location", character.Location.Name},
				{"image", character.ImageURL},
				{"episodes", domain.NewSet(character.EpisodeIDs...).Join(", ")},
			})
		},
	}

	episodes := &cobra.Command{
		Use:   "episodes <id>",
		Short: "List the episodes a character appears in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCharacterID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			character, err := catalog.GetCharacter(ctx, id)
			if err != nil {
				return err
			}
			episodes, err := catalog.GetEpisodes(ctx, character.EpisodeIDs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, episodes)
			}
			return printTable(out, episodeHeader, episodeRows(episodes))
		},
	}

	cmd.AddCommand(get, episodes)
	return cmd
}
