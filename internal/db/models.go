package db

import (
	"time"

	"github.com/google/uuid"
)

type CharacterDTO struct {
	ID           int32   `db:"id"`
	Name         string  `db:"name"`
	Status       string  `db:"status"`
	Gender       string  `db:"gender"`
	Species      string  `db:"species"`
	Type         string  `db:"type"`
	ImageURL     string  `db:"image_url"`
	LocationName string  `db:"location_name"`
	LocationURL  string  `db:"location_url"`
	OriginName   string  `db:"origin_name"`
	OriginURL    string  `db:"origin_url"`
	EpisodeIDs   []int32 `db:"episode_ids"`
	Created      string  `db:"created"`
}

type SavedCharacterDTO struct {
	CharacterDTO
	UserID  uuid.UUID `db:"user_id"`
	SavedAt time.Time `db:"saved_at"`
}
