//go:generate go run github.com/abice/go-enum@v0.5.6 --marshal --sql

package domain

// ENUM(unknown, alive, dead)
type CharacterStatus int

// ENUM(unknown, female, male, genderless)
type CharacterGender int

// Place is a denormalized reference to a location resource.
type Place struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Character struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Status     CharacterStatus `json:"status"`
	Gender     CharacterGender `json:"gender"`
	Species    string          `json:"species"`
	Type       string          `json:"type"`
	ImageURL   string          `json:"imageUrl"`
	Location   Place           `json:"location"`
	Origin     Place           `json:"origin"`
	EpisodeIDs []int           `json:"episodeIds"`
	Created    string          `json:"created"`
}

type CharacterPage struct {
	Info       PageInfo    `json:"info"`
	Characters []Character `json:"characters"`
}

func ValidateCharacterID(id int) []string {
	var errs []string
	if id <= 0 {
		errs = append(errs, "id: must be a positive integer")
	}
	return errs
}
