package acceptance

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/technopolitica/morty/internal/domain"
	"github.com/technopolitica/morty/test/acceptance/testutils"
	. "github.com/technopolitica/morty/test/matchers"
)

func AssertHasStandardUnauthorizedResponse(op func() *http.Response) {
	It("returns 401 Unauthorized status", func() {
		Expect(op()).To(HaveHTTPStatus(http.StatusUnauthorized))
	})

	It("has WWW-Authenticate: Bearer header in response", func() {
		Expect(op()).To(HaveHTTPHeaderWithValue("WWW-Authenticate", `Bearer, charset="UTF-8"`))
	})
}

func fetchFirstPage() domain.PaginatedSavedCharactersResponse {
	return readJSONBody[domain.PaginatedSavedCharactersResponse](apiClient.ListSaved(testutils.ListSavedOptions{Limit: 2}))
}

var _ = Describe("/saved", func() {
	Context("unauthenticated", func() {
		When("user attempts to save a character", func() {
			AssertHasStandardUnauthorizedResponse(func() *http.Response {
				return apiClient.SaveCharacter("1")
			})
		})

		When("user attempts to list saved characters", func() {
			AssertHasStandardUnauthorizedResponse(func() *http.Response {
				return apiClient.ListSaved(testutils.ListSavedOptions{})
			})
		})

		When("user attempts to unsave a character", func() {
			AssertHasStandardUnauthorizedResponse(func() *http.Response {
				return apiClient.UnsaveCharacter("1")
			})
		})
	})

	Context("authenticated w/ an unsigned JWT", func() {
		BeforeEach(func() {
			apiClient.AuthenticateWithUnsignedJWT()
		})

		When("user attempts to save a character", func() {
			AssertHasStandardUnauthorizedResponse(func() *http.Response {
				return apiClient.SaveCharacter("1")
			})
		})

		When("user attempts to list saved characters", func() {
			AssertHasStandardUnauthorizedResponse(func() *http.Response {
				return apiClient.ListSaved(testutils.ListSavedOptions{})
			})
		})
	})

	Context("authenticated", func() {
		var userID uuid.UUID
		BeforeEach(func() {
			userID = testutils.GenerateRandomUUID()
			apiClient.AuthenticateAsUser(userID)
		})

		It("saves a character and lists it", func() {
			Expect(apiClient.SaveCharacter("1")).To(HaveHTTPStatus(http.StatusCreated))

			page := readJSONBody[domain.PaginatedSavedCharactersResponse](apiClient.ListSaved(testutils.ListSavedOptions{}))
			Expect(page.Saved).To(HaveExactElements(
				And(
					HaveField("UserID", userID),
					HaveField("Character.Name", "Rick Sanchez"),
				),
			))
		})

		It("refuses to save the same character twice", func() {
			Expect(apiClient.SaveCharacter("1")).To(HaveHTTPStatus(http.StatusCreated))
			res := apiClient.SaveCharacter("1")
			Expect(res).To(HaveHTTPStatus(http.StatusConflict))
			Expect(res).To(HaveAPIError("already_saved"))
		})

		It("responds 404 when saving an unknown character", func() {
			Expect(apiClient.SaveCharacter("404")).To(HaveHTTPStatus(http.StatusNotFound))
		})

		It("responds 400 for malformed ids", func() {
			Expect(apiClient.SaveCharacter("rick")).To(HaveHTTPStatus(http.StatusBadRequest))
		})

		It("unsaves a character", func() {
			Expect(apiClient.SaveCharacter("2")).To(HaveHTTPStatus(http.StatusCreated))
			Expect(apiClient.UnsaveCharacter("2")).To(HaveHTTPStatus(http.StatusNoContent))
			Expect(apiClient.UnsaveCharacter("2")).To(HaveHTTPStatus(http.StatusNotFound))
		})

		It("keeps saved characters private to each user", func() {
			Expect(apiClient.SaveCharacter("1")).To(HaveHTTPStatus(http.StatusCreated))

			apiClient.AuthenticateAsUser(testutils.GenerateRandomUUID())
			page := readJSONBody[domain.PaginatedSavedCharactersResponse](apiClient.ListSaved(testutils.ListSavedOptions{}))
			Expect(page.Saved).To(BeEmpty())
		})

		When("several characters are saved", func() {
			BeforeEach(func() {
				for id := range testutils.FakeCharacters {
					Expect(apiClient.SaveCharacter(fmt.Sprint(id))).To(HaveHTTPStatus(http.StatusCreated))
				}
			})

			It("paginates with first and last links", func() {
				firstPage := fetchFirstPage()
				Expect(firstPage.Saved).To(HaveLen(2))
				Expect(firstPage.Links.Prev).To(BeEmpty())
				Expect(firstPage.Links.Next).NotTo(BeEmpty())

				lastPage := readJSONBody[domain.PaginatedSavedCharactersResponse](apiClient.Get(firstPage.Links.Last))
				Expect(lastPage.Saved).To(HaveLen(1))
				Expect(lastPage.Links.Next).To(BeEmpty())
				Expect(lastPage.Links.Prev).To(Equal(firstPage.Links.First))
			})

			It("rejects limits above the maximum", func() {
				res := apiClient.ListSaved(testutils.ListSavedOptions{Limit: 21})
				Expect(res).To(HaveHTTPStatus(http.StatusBadRequest))
				Expect(res).To(HaveAPIError("bad_param", "page[limit]: must be less than or equal to 20"))
			})
		})
	})
})
