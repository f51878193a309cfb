package db

import (
	"context"
	"errors"
	"fmt"

	_ "embed"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/technopolitica/morty/internal/domain"
)

func dtoFromCharacter(character domain.Character) CharacterDTO {
	episodeIDs := make([]int32, 0, len(character.EpisodeIDs))
	for _, id := range character.EpisodeIDs {
		episodeIDs = append(episodeIDs, int32(id))
	}
	return CharacterDTO{
		ID:           int32(character.ID),
		Name:         character.Name,
		Status:       character.Status.String(),
		Gender:       character.Gender.String(),
		Species:      character.Species,
		Type:         character.Type,
		ImageURL:     character.ImageURL,
		LocationName: character.Location.Name,
		LocationURL:  character.Location.URL,
		OriginName:   character.Origin.Name,
		OriginURL:    character.Origin.URL,
		EpisodeIDs:   episodeIDs,
		Created:      character.Created,
	}
}

func characterFromDTO(character CharacterDTO) domain.Character {
	// Rows written by an older build may hold codes this one does not know;
	// they read back as unknown.
	status, _ := domain.ParseCharacterStatus(character.Status)
	gender, _ := domain.ParseCharacterGender(character.Gender)
	episodeIDs := make([]int, 0, len(character.EpisodeIDs))
	for _, id := range character.EpisodeIDs {
		episodeIDs = append(episodeIDs, int(id))
	}
	return domain.Character{
		ID:       int(character.ID),
		Name:     character.Name,
		Status:   status,
		Gender:   gender,
		Species:  character.Species,
		Type:     character.Type,
		ImageURL: character.ImageURL,
		Location: domain.Place{
			Name: character.LocationName,
			URL:  character.LocationURL,
		},
		Origin: domain.Place{
			Name: character.OriginName,
			URL:  character.OriginURL,
		},
		EpisodeIDs: episodeIDs,
		Created:    character.Created,
	}
}

func savedCharacterFromDTO(saved SavedCharacterDTO) domain.SavedCharacter {
	return domain.SavedCharacter{
		UserID:    saved.UserID,
		Character: characterFromDTO(saved.CharacterDTO),
		SavedAt:   saved.SavedAt,
	}
}

//go:embed queries/fetch-character.sql
var fetchCharacterQuery string

func (repo Repository) FetchCharacter(ctx context.Context, id int) (character domain.Character, err error) {
	rows, err := repo.Query(ctx, fetchCharacterQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		err = fmt.Errorf("failed to execute query: %w", err)
		return
	}

	characterDTOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[CharacterDTO])
	if err != nil {
		err = fmt.Errorf("failed to map row to CharacterDTO: %w", err)
		return
	}
	if len(characterDTOs) == 0 {
		err = ErrNotFound
		return
	}

	character = characterFromDTO(characterDTOs[0])
	return
}

//go:embed queries/upsert-character.sql
var upsertCharacterQuery string

func (repo Repository) UpsertCharacters(ctx context.Context, characters []domain.Character) error {
	if len(characters) == 0 {
		return nil
	}
	return repo.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, character := range characters {
			dto := dtoFromCharacter(character)
			_, err := tx.Exec(ctx, upsertCharacterQuery, pgx.NamedArgs{
				"id":            dto.ID,
				"name":          dto.Name,
				"status":        dto.Status,
				"gender":        dto.Gender,
				"species":       dto.Species,
				"type":          dto.Type,
				"image_url":     dto.ImageURL,
				"location_name": dto.LocationName,
				"location_url":  dto.LocationURL,
				"origin_name":   dto.OriginName,
				"origin_url":    dto.OriginURL,
				"episode_ids":   dto.EpisodeIDs,
				"created":       dto.Created,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert character %d: %w", dto.ID, err)
			}
		}
		return nil
	})
}

//go:embed queries/save-character.sql
var saveCharacterQuery string

func (repo Repository) SaveCharacter(ctx context.Context, params domain.SaveCharacterParams) error {
	_, err := repo.Exec(ctx, saveCharacterQuery, pgx.NamedArgs{
		"user_id":      params.UserID,
		"character_id": params.CharacterID,
	})

	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrConflict
		case pgerrcode.ForeignKeyViolation:
			return ErrNotFound
		}
	}

	return err
}

//go:embed queries/unsave-character.sql
var unsaveCharacterQuery string

func (repo Repository) UnsaveCharacter(ctx context.Context, params domain.SaveCharacterParams) error {
	res, err := repo.Exec(ctx, unsaveCharacterQuery, pgx.NamedArgs{
		"user_id":      params.UserID,
		"character_id": params.CharacterID,
	})

	if err == nil && res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return err
}

//go:embed queries/list-saved-characters.sql
var listSavedCharactersQuery string

//go:embed queries/count-saved-characters.sql
var countSavedCharactersQuery string

func (repo Repository) ListSavedCharacters(ctx context.Context, arg domain.ListSavedCharactersParams) (page domain.Page[domain.SavedCharacter], err error) {
	err = repo.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, listSavedCharactersQuery, pgx.NamedArgs{"user_id": arg.UserID, "limit": arg.Limit, "offset": arg.Offset})
		if err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		savedDTOs, err := pgx.CollectRows(rows, pgx.RowToStructByName[SavedCharacterDTO])
		if err != nil {
			return fmt.Errorf("failed to map row to SavedCharacterDTO: %w", err)
		}
		page.Items = make([]domain.SavedCharacter, 0, len(savedDTOs))
		for _, dto := range savedDTOs {
			page.Items = append(page.Items, savedCharacterFromDTO(dto))
		}

		row := tx.QueryRow(ctx, countSavedCharactersQuery, pgx.NamedArgs{"user_id": arg.UserID})
		err = row.Scan(&page.Total)
		if err != nil {
			return fmt.Errorf("failed to count saved characters: %w", err)
		}
		return nil
	})
	return
}
