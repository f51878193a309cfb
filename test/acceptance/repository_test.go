package acceptance

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/technopolitica/morty/internal/db"
	"github.com/technopolitica/morty/internal/domain"
	"github.com/technopolitica/morty/test/acceptance/testutils"
)

func makeCharacter(id int, name string) domain.Character {
	return domain.Character{
		ID:         id,
		Name:       name,
		Status:     domain.CharacterStatusDead,
		Gender:     domain.CharacterGenderGenderless,
		Species:    "Alien",
		Type:       "Parasite",
		ImageURL:   "https://rickandmortyapi.com/api/character/avatar/1.jpeg",
		Location:   domain.Place{Name: "Earth (Replacement Dimension)", URL: "https://rickandmortyapi.com/api/location/20"},
		Origin:     domain.Place{Name: "unknown", URL: ""},
		EpisodeIDs: []int{15, 16},
		Created:    "2017-11-04T18:48:46.250Z",
	}
}

var _ = Describe("Repository", func() {
	var repo db.Repository
	var userID uuid.UUID

	BeforeEach(func(ctx context.Context) {
		pool, err := db.Connect(ctx, testDBURL)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(pool.Close)
		repo = db.NewRepository(pool)
		userID = testutils.GenerateRandomUUID()
	})

	It("round-trips upserted characters", func(ctx context.Context) {
		character := makeCharacter(1, "Sleepy Gary")
		Expect(repo.UpsertCharacters(ctx, []domain.Character{character})).To(Succeed())

		fetched, err := repo.FetchCharacter(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(fetched).To(Equal(character))
	})

	It("overwrites cached characters on upsert", func(ctx context.Context) {
		Expect(repo.UpsertCharacters(ctx, []domain.Character{makeCharacter(1, "Sleepy Gary")})).To(Succeed())
		Expect(repo.UpsertCharacters(ctx, []domain.Character{makeCharacter(1, "Cousin Nicky")})).To(Succeed())

		fetched, err := repo.FetchCharacter(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(fetched.Name).To(Equal("Cousin Nicky"))
	})

	It("reports unknown characters as not found", func(ctx context.Context) {
		_, err := repo.FetchCharacter(ctx, 42)
		Expect(err).To(MatchError(db.ErrNotFound))
	})

	Describe("saving", func() {
		BeforeEach(func(ctx context.Context) {
			Expect(repo.UpsertCharacters(ctx, []domain.Character{
				makeCharacter(1, "Sleepy Gary"),
				makeCharacter(2, "Cousin Nicky"),
				makeCharacter(3, "Pencilvester"),
			})).To(Succeed())
		})

		It("conflicts when a character is saved twice", func(ctx context.Context) {
			params := domain.SaveCharacterParams{UserID: userID, CharacterID: 1}
			Expect(repo.SaveCharacter(ctx, params)).To(Succeed())
			Expect(repo.SaveCharacter(ctx, params)).To(MatchError(db.ErrConflict))
		})

		It("refuses to save characters that are not cached", func(ctx context.Context) {
			err := repo.SaveCharacter(ctx, domain.SaveCharacterParams{UserID: userID, CharacterID: 99})
			Expect(err).To(MatchError(db.ErrNotFound))
		})

		It("reports unsaving an unsaved character as not found", func(ctx context.Context) {
			err := repo.UnsaveCharacter(ctx, domain.SaveCharacterParams{UserID: userID, CharacterID: 1})
			Expect(err).To(MatchError(db.ErrNotFound))
		})

		It("lists saved characters newest first with a total", func(ctx context.Context) {
			for _, id := range []int{1, 2, 3} {
				Expect(repo.SaveCharacter(ctx, domain.SaveCharacterParams{UserID: userID, CharacterID: id})).To(Succeed())
			}
			otherUser := testutils.GenerateRandomUUID()
			Expect(repo.SaveCharacter(ctx, domain.SaveCharacterParams{UserID: otherUser, CharacterID: 1})).To(Succeed())

			page, err := repo.ListSavedCharacters(ctx, domain.ListSavedCharactersParams{UserID: userID, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeEquivalentTo(3))
			Expect(page.Items).To(HaveExactElements(
				HaveField("Character.ID", 3),
				HaveField("Character.ID", 2),
			))

			page, err = repo.ListSavedCharacters(ctx, domain.ListSavedCharactersParams{UserID: userID, Limit: 2, Offset: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveExactElements(HaveField("Character.ID", 1)))
		})
	})
})

var _ = Describe("migrations", func() {
	It("can be rolled back and re-applied", func(ctx context.Context) {
		Expect(migrator.MigrateTo(ctx, testDBURL, "0")).To(Succeed())
		Expect(migrator.Status(ctx, testDBURL)).To(Succeed())
		Expect(migrator.MigrateTo(ctx, testDBURL, "latest")).To(Succeed())
	})

	It("fails on an unknown target version", func(ctx context.Context) {
		Expect(migrator.MigrateTo(ctx, testDBURL, "latest-ish")).NotTo(Succeed())
	})
})
