package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SavedCharacter struct {
	UserID    uuid.UUID `json:"user_id"`
	Character Character `json:"character"`
	SavedAt   time.Time `json:"saved_at"`
}

type PaginatedSavedCharactersResponse struct {
	PaginatedResponse
	Saved []SavedCharacter `json:"saved"`
}

type SaveCharacterParams struct {
	UserID      uuid.UUID
	CharacterID int
}

type ListSavedCharactersParams struct {
	UserID uuid.UUID
	Offset int32
	Limit  int32
}

type CharacterRepository interface {
	FetchCharacter(ctx context.Context, id int) (Character, error)
	UpsertCharacters(ctx context.Context, characters []Character) error
	SaveCharacter(ctx context.Context, params SaveCharacterParams) error
	UnsaveCharacter(ctx context.Context, params SaveCharacterParams) error
	ListSavedCharacters(ctx context.Context, params ListSavedCharactersParams) (Page[SavedCharacter], error)
}

// Catalog is the upstream source of characters and episodes.
type Catalog interface {
	GetCharacterPage(ctx context.Context, page int) (CharacterPage, error)
	GetCharacter(ctx context.Context, id int) (Character, error)
	GetCharacters(ctx context.Context, ids []int) ([]Character, error)
	GetEpisodePage(ctx context.Context, page int) (EpisodePage, error)
	GetEpisodes(ctx context.Context, ids []int) ([]Episode, error)
}
