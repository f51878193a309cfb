package remote

import "encoding/json"

func decode[T any](resource string, data []byte) (value T, err error) {
	err = json.Unmarshal(data, &value)
	if err != nil {
		err = &DeserializationError{Resource: resource, Err: err}
	}
	return
}

func DecodeCharacterPage(data []byte) (RemoteCharacterPage, error) {
	return decode[RemoteCharacterPage]("character page", data)
}

func DecodeCharacter(data []byte) (RemoteCharacter, error) {
	return decode[RemoteCharacter]("character", data)
}

// DecodeCharacters decodes the array returned by multi-id lookups.
func DecodeCharacters(data []byte) ([]RemoteCharacter, error) {
	return decodeList[RemoteCharacter]("characters", data)
}

func DecodeEpisodePage(data []byte) (RemoteEpisodePage, error) {
	return decode[RemoteEpisodePage]("episode page", data)
}

func DecodeEpisode(data []byte) (RemoteEpisode, error) {
	return decode[RemoteEpisode]("episode", data)
}

func DecodeEpisodes(data []byte) ([]RemoteEpisode, error) {
	return decodeList[RemoteEpisode]("episodes", data)
}

func decodeList[T any](resource string, data []byte) ([]T, error) {
	items, err := decode[*[]T](resource, data)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, &DeserializationError{Resource: resource, Err: missingFields(resource)}
	}
	return *items, nil
}
