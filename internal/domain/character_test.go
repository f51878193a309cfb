package domain

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CharacterStatus", func() {
	DescribeTable("marshals/unmarshals to/from a JSON string",
		func(status CharacterStatus, expected string) {
			encodedExpected := fmt.Sprintf(`"%s"`, expected)
			Expect(json.Marshal(status)).To(MatchJSON(encodedExpected))

			var output CharacterStatus
			err := json.Unmarshal([]byte(encodedExpected), &output)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(Equal(status))
		},
		Entry("alive", CharacterStatusAlive, "alive"),
		Entry("dead", CharacterStatusDead, "dead"),
		Entry("unknown", CharacterStatusUnknown, "unknown"),
	)

	It("defaults to unknown", func() {
		var status CharacterStatus
		Expect(status).To(Equal(CharacterStatusUnknown))
	})

	It("rejects codes it does not know", func() {
		_, err := ParseCharacterStatus("mutated")
		Expect(err).To(MatchError(ErrInvalidCharacterStatus))
	})

	It("scans from a database text column", func() {
		var status CharacterStatus
		Expect(status.Scan("dead")).To(Succeed())
		Expect(status).To(Equal(CharacterStatusDead))
		Expect(status.Value()).To(Equal("dead"))
	})
})

var _ = Describe("CharacterGender", func() {
	DescribeTable("marshals/unmarshals to/from a JSON string",
		func(gender CharacterGender, expected string) {
			encodedExpected := fmt.Sprintf(`"%s"`, expected)
			Expect(json.Marshal(gender)).To(MatchJSON(encodedExpected))

			var output CharacterGender
			err := json.Unmarshal([]byte(encodedExpected), &output)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(Equal(gender))
		},
		Entry("female", CharacterGenderFemale, "female"),
		Entry("male", CharacterGenderMale, "male"),
		Entry("genderless", CharacterGenderGenderless, "genderless"),
		Entry("unknown", CharacterGenderUnknown, "unknown"),
	)
})

var _ = Describe("Character", func() {
	It("serializes with the field names the presentation layer consumes", func() {
		character := Character{
			ID:         1,
			Name:       "Rick Sanchez",
			Status:     CharacterStatusAlive,
			Gender:     CharacterGenderMale,
			Species:    "Human",
			ImageURL:   "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
			Location:   Place{Name: "Citadel of Ricks", URL: "https://rickandmortyapi.com/api/location/3"},
			Origin:     Place{Name: "Earth (C-137)", URL: "https://rickandmortyapi.com/api/location/1"},
			EpisodeIDs: []int{1, 2},
			Created:    "2017-11-04T18:48:46.250Z",
		}
		Expect(json.Marshal(character)).To(MatchJSON(`{
			"id": 1,
			"name": "Rick Sanchez",
			"status": "alive",
			"gender": "male",
			"species": "Human",
			"type": "",
			"imageUrl": "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
			"location": {"name": "Citadel of Ricks", "url": "https://rickandmortyapi.com/api/location/3"},
			"origin": {"name": "Earth (C-137)", "url": "https://rickandmortyapi.com/api/location/1"},
			"episodeIds": [1, 2],
			"created": "2017-11-04T18:48:46.250Z"
		}`))
	})

	It("validates ids", func() {
		Expect(ValidateCharacterID(1)).To(BeEmpty())
		Expect(ValidateCharacterID(0)).To(ConsistOf("id: must be a positive integer"))
		Expect(ValidateCharacterID(-3)).To(ConsistOf("id: must be a positive integer"))
	})
})

var _ = Describe("PageInfo", func() {
	It("serializes absent links as null", func() {
		Expect(json.Marshal(PageInfo{Count: 2, Pages: 1})).
			To(MatchJSON(`{"count": 2, "pages": 1, "next": null, "prev": null}`))
	})
})
