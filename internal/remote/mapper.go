package remote

import (
	"strconv"
	"strings"

	"github.com/technopolitica/morty/internal/domain"
)

func copyLink(link *string) *string {
	if link == nil {
		return nil
	}
	value := *link
	return &value
}

// idFromResourceURL extracts the trailing numeric id of an upstream resource
// URL such as https://rickandmortyapi.com/api/episode/28.
func idFromResourceURL(resourceURL string) (id int, ok bool) {
	trimmed := strings.TrimRight(resourceURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func idsFromResourceURLs(resourceURLs []string) []int {
	ids := make([]int, 0, len(resourceURLs))
	for _, resourceURL := range resourceURLs {
		id, ok := idFromResourceURL(resourceURL)
		if !ok {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func ToDomainCharacter(character RemoteCharacter) domain.Character {
	// Codes the catalog adds later fall back to the unknown variants.
	status, _ := domain.ParseCharacterStatus(strings.ToLower(character.Status))
	gender, _ := domain.ParseCharacterGender(strings.ToLower(character.Gender))
	return domain.Character{
		ID:       character.ID,
		Name:     character.Name,
		Status:   status,
		Gender:   gender,
		Species:  character.Species,
		Type:     character.Type,
		ImageURL: character.Image,
		Location: domain.Place{
			Name: character.Location.Name,
			URL:  character.Location.URL,
		},
		Origin: domain.Place{
			Name: character.Origin.Name,
			URL:  character.Origin.URL,
		},
		EpisodeIDs: idsFromResourceURLs(character.Episode),
		Created:    character.Created,
	}
}

func ToDomainCharacters(characters []RemoteCharacter) []domain.Character {
	mapped := make([]domain.Character, 0, len(characters))
	for _, character := range characters {
		mapped = append(mapped, ToDomainCharacter(character))
	}
	return mapped
}

func ToDomainCharacterPage(page RemoteCharacterPage) domain.CharacterPage {
	return domain.CharacterPage{
		Info: domain.PageInfo{
			Count: page.Info.Count,
			Pages: page.Info.Pages,
			Next:  copyLink(page.Info.Next),
			// FIXME: prev is populated from next, so the true previous page link is
			// never exposed. Clients must compute the previous page themselves.
			Prev: copyLink(page.Info.Next),
		},
		Characters: ToDomainCharacters(page.Results),
	}
}

func ToDomainEpisode(episode RemoteEpisode) domain.Episode {
	return domain.Episode{
		ID:            episode.ID,
		Name:          episode.Name,
		AirDate:       episode.AirDate,
		SeasonEpisode: episode.Episode,
		CharacterIDs:  idsFromResourceURLs(episode.Characters),
		Created:       episode.Created,
	}
}

func ToDomainEpisodes(episodes []RemoteEpisode) []domain.Episode {
	mapped := make([]domain.Episode, 0, len(episodes))
	for _, episode := range episodes {
		mapped = append(mapped, ToDomainEpisode(episode))
	}
	return mapped
}

func ToDomainEpisodePage(page RemoteEpisodePage) domain.EpisodePage {
	return domain.EpisodePage{
		Info: domain.PageInfo{
			Count: page.Info.Count,
			Pages: page.Info.Pages,
			Next:  copyLink(page.Info.Next),
			Prev:  copyLink(page.Info.Prev),
		},
		Episodes: ToDomainEpisodes(page.Results),
	}
}
