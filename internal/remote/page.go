package remote

import (
	"encoding/json"
	"fmt"
)

type RemoteInfo struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

func (info *RemoteInfo) UnmarshalJSON(data []byte) error {
	var wire struct {
		Count *int    `json:"count"`
		Pages *int    `json:"pages"`
		Next  *string `json:"next"`
		Prev  *string `json:"prev"`
	}
	err := json.Unmarshal(data, &wire)
	if err != nil {
		return err
	}
	var missing []string
	if wire.Count == nil {
		missing = append(missing, "info.count")
	}
	if wire.Pages == nil {
		missing = append(missing, "info.pages")
	}
	if err := missingFields(missing...); err != nil {
		return err
	}
	if *wire.Count < 0 {
		return fmt.Errorf("info.count: must be non-negative, got %d: %w", *wire.Count, ErrInvalidValue)
	}
	if *wire.Pages < 0 {
		return fmt.Errorf("info.pages: must be non-negative, got %d: %w", *wire.Pages, ErrInvalidValue)
	}
	*info = RemoteInfo{
		Count: *wire.Count,
		Pages: *wire.Pages,
		Next:  wire.Next,
		Prev:  wire.Prev,
	}
	return nil
}

// RemotePage is the info+results envelope the upstream wraps every listing in.
type RemotePage[T any] struct {
	Info    RemoteInfo `json:"info"`
	Results []T        `json:"results"`
}

func (page *RemotePage[T]) UnmarshalJSON(data []byte) error {
	var wire struct {
		Info    *RemoteInfo `json:"info"`
		Results *[]T        `json:"results"`
	}
	err := json.Unmarshal(data, &wire)
	if err != nil {
		return err
	}
	var missing []string
	if wire.Info == nil {
		missing = append(missing, "info")
	}
	if wire.Results == nil {
		missing = append(missing, "results")
	}
	if err := missingFields(missing...); err != nil {
		return err
	}
	*page = RemotePage[T]{Info: *wire.Info, Results: *wire.Results}
	return nil
}

type RemoteCharacterPage = RemotePage[RemoteCharacter]

type RemoteEpisodePage = RemotePage[RemoteEpisode]
