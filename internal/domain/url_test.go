package domain

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("URL", func() {
	It("replaces query parameters without touching the original", func() {
		base, err := ParseURL("http://localhost/saved?page%5Blimit%5D=2")
		Expect(err).NotTo(HaveOccurred())

		next := base.WithQueryParam("page[offset]", 2)
		Expect(next.Query().Get("page[offset]")).To(Equal("2"))
		Expect(next.Query().Get("page[limit]")).To(Equal("2"))
		Expect(base.Query().Has("page[offset]")).To(BeFalse())
	})

	It("round-trips through JSON", func() {
		u, err := ParseURL("https://rickandmortyapi.com/api/character?page=2")
		Expect(err).NotTo(HaveOccurred())
		data, err := json.Marshal(u)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`"https://rickandmortyapi.com/api/character?page=2"`))

		var output URL
		Expect(json.Unmarshal(data, &output)).To(Succeed())
		Expect(output.String()).To(Equal(u.String()))
	})

	It("stringifies the zero value as an empty string", func() {
		Expect(URL{}.String()).To(BeEmpty())
	})
})
