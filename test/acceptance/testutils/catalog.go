package testutils

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/onsi/gomega/ghttp"
)

// FakeCharacters are the characters served by the fake catalog, keyed by id.
var FakeCharacters = map[int]string{
	1: "Rick Sanchez",
	2: "Morty Smith",
	3: "Summer Smith",
}

func fakeCharacterJSON(id int) string {
	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"status": "Alive",
		"species": "Human",
		"type": "",
		"gender": "Male",
		"origin": {"name": "Earth (C-137)", "url": "https://rickandmortyapi.com/api/location/1"},
		"location": {"name": "Citadel of Ricks", "url": "https://rickandmortyapi.com/api/location/3"},
		"image": "https://rickandmortyapi.com/api/character/avatar/%d.jpeg",
		"episode": ["https://rickandmortyapi.com/api/episode/1", "https://rickandmortyapi.com/api/episode/2"],
		"url": "https://rickandmortyapi.com/api/character/%d",
		"created": "2017-11-04T18:48:46.250Z"
	}`, id, FakeCharacters[id], id, id)
}

func fakeEpisodeJSON(id int) string {
	return fmt.Sprintf(`{
		"id": %d,
		"name": "Episode %d",
		"air_date": "December 2, 2013",
		"episode": "S01E%02d",
		"characters": ["https://rickandmortyapi.com/api/character/1", "https://rickandmortyapi.com/api/character/2"],
		"url": "https://rickandmortyapi.com/api/episode/%d",
		"created": "2017-11-10T12:56:33.798Z"
	}`, id, id, id, id)
}

func characterHandler(w http.ResponseWriter, r *http.Request) {
	var id int
	_, err := fmt.Sscanf(strings.TrimPrefix(r.URL.Path, "/api/character/"), "%d", &id)
	if _, ok := FakeCharacters[id]; err != nil || !ok {
		ghttp.RespondWith(http.StatusNotFound, `{"error": "Character not found"}`)(w, r)
		return
	}
	ghttp.RespondWith(http.StatusOK, fakeCharacterJSON(id))(w, r)
}

// StartFakeCatalog serves a tiny, fixed subset of the character catalog API
// under /api.
func StartFakeCatalog() (catalog *ghttp.Server) {
	catalog = ghttp.NewServer()
	catalog.SetAllowUnhandledRequests(true)
	catalog.SetUnhandledRequestStatusCode(http.StatusNotFound)

	catalog.RouteToHandler(http.MethodGet, "/api/character", ghttp.RespondWith(http.StatusOK, fmt.Sprintf(`{
		"info": {"count": 3, "pages": 1, "next": null, "prev": null},
		"results": [%s, %s, %s]
	}`, fakeCharacterJSON(1), fakeCharacterJSON(2), fakeCharacterJSON(3))))
	for id := range FakeCharacters {
		catalog.RouteToHandler(http.MethodGet, fmt.Sprintf("/api/character/%d", id), characterHandler)
	}
	catalog.RouteToHandler(http.MethodGet, "/api/episode", ghttp.RespondWith(http.StatusOK, fmt.Sprintf(`{
		"info": {"count": 2, "pages": 1, "next": null, "prev": null},
		"results": [%s, %s]
	}`, fakeEpisodeJSON(1), fakeEpisodeJSON(2))))
	catalog.RouteToHandler(http.MethodGet, "/api/episode/1,2", ghttp.RespondWith(http.StatusOK, fmt.Sprintf(`[%s, %s]`, fakeEpisodeJSON(1), fakeEpisodeJSON(2))))
	return
}
