package commands

import (
	"bytes"
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

const rickJSON = `{
	"id": 1,
	"name": "Rick Sanchez",
	"status": "Alive",
	"species": "Human",
	"type": "",
	"gender": "Male",
	"origin": {"name": "Earth (C-137)", "url": "https://rickandmortyapi.com/api/location/1"},
	"location": {"name": "Citadel of Ricks", "url": "https://rickandmortyapi.com/api/location/3"},
	"image": "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
	"episode": ["https://rickandmortyapi.com/api/episode/1"],
	"url": "https://rickandmortyapi.com/api/character/1",
	"created": "2017-11-04T18:48:46.250Z"
}`

const pilotJSON = `{
	"id": 1,
	"name": "Pilot",
	"air_date": "December 2, 2013",
	"episode": "S01E01",
	"characters": ["https://rickandmortyapi.com/api/character/1"],
	"url": "https://rickandmortyapi.com/api/episode/1",
	"created": "2017-11-10T12:56:33.798Z"
}`

var _ = Describe("morty", func() {
	var upstream *ghttp.Server

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--upstream-url", upstream.URL() + "/api"}, args...))
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	BeforeEach(func() {
		upstream = ghttp.NewServer()
		DeferCleanup(upstream.Close)
		asJSON = false
	})

	It("lists a page of characters", func() {
		upstream.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest(http.MethodGet, "/api/character", "page=2"),
			ghttp.VerifyHeaderKV("User-Agent", "morty-cli"),
			ghttp.RespondWith(http.StatusOK, `{
				"info": {"count": 826, "pages": 42, "next": "https://rickandmortyapi.com/api/character?page=3", "prev": null},
				"results": [`+rickJSON+`]
			}`),
		))

		out, err := run("characters", "--page", "2")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Rick Sanchez"))
		Expect(out).To(ContainSubstring("alive"))
		Expect(out).To(ContainSubstring("page 2 of 42 (826 characters)"))
		Expect(out).To(ContainSubstring("next: https://rickandmortyapi.com/api/character?page=3"))
		Expect(out).NotTo(ContainSubstring("prev:"))
	})

	It("shows a character's details as JSON", func() {
		upstream.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest(http.MethodGet, "/api/character/1"),
			ghttp.RespondWith(http.StatusOK, rickJSON),
		))

		out, err := run("--json", "character", "get", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchJSON(`{
			"id": 1,
			"name": "Rick Sanchez",
			"status": "alive",
			"gender": "male",
			"species": "Human",
			"type": "",
			"imageUrl": "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
			"location": {"name": "Citadel of Ricks", "url": "https://rickandmortyapi.com/api/location/3"},
			"origin": {"name": "Earth (C-137)", "url": "https://rickandmortyapi.com/api/location/1"},
			"episodeIds": [1],
			"created": "2017-11-04T18:48:46.250Z"
		}`))
	})

	It("lists the episodes of a character", func() {
		upstream.AppendHandlers(
			ghttp.RespondWith(http.StatusOK, rickJSON),
			ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/episode/1"),
				ghttp.RespondWith(http.StatusOK, pilotJSON),
			),
		)

		out, err := run("character", "episodes", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("S01E01"))
		Expect(out).To(ContainSubstring("Pilot"))
	})

	It("rejects invalid character ids without calling upstream", func() {
		_, err := run("character", "get", "zero")
		Expect(err).To(MatchError(ContainSubstring("invalid character id")))
		Expect(upstream.ReceivedRequests()).To(BeEmpty())
	})

	It("surfaces upstream failures", func() {
		upstream.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, `{"error": "Character not found"}`))

		_, err := run("character", "get", "9999")
		Expect(err).To(MatchError(ContainSubstring("Character not found")))
	})

	It("lists the navigation tabs", func() {
		out, err := run("tabs")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("play_circle"))
		Expect(out).To(ContainSubstring("bookmark"))
	})
})
