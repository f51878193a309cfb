package remote

import (
	"encoding/json"
	"fmt"
)

type RemotePlace struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type RemoteCharacter struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Status   string      `json:"status"`
	Species  string      `json:"species"`
	Type     string      `json:"type"`
	Gender   string      `json:"gender"`
	Origin   RemotePlace `json:"origin"`
	Location RemotePlace `json:"location"`
	Image    string      `json:"image"`
	Episode  []string    `json:"episode"`
	URL      string      `json:"url"`
	Created  string      `json:"created"`
}

func (c *RemoteCharacter) UnmarshalJSON(data []byte) error {
	type character RemoteCharacter
	var wire struct {
		character
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
	*c = RemoteCharacter(wire.character)
	c.ID = *wire.ID
	return nil
}
