package remote

import (
	"encoding/json"
	"fmt"
)

type RemoteEpisode struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	AirDate    string   `json:"air_date"`
	Episode    string   `json:"episode"`
	Characters []string `json:"characters"`
	URL        string   `json:"url"`
	Created    string   `json:"created"`
}

func (e *RemoteEpisode) UnmarshalJSON(data []byte) error {
	type episode RemoteEpisode
	var wire struct {
		episode
		ID *int `json:"id"`
	}
	err := json.Unmarshal(data, &wire)
	if err != nil {
		return err
	}
	if wire.ID == nil {
		return missingFields("id")
	}
	if *wire.ID <= 0 {
		return fmt.Errorf("id: must be positive, got %d: %w", *wire.ID, ErrInvalidValue)
	}
	*e = RemoteEpisode(wire.episode)
	e.ID = *wire.ID
	return nil
}
