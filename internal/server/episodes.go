package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func NewEpisodesRouter(env *Env) *chi.Mux {
	episodesRouter := chi.NewRouter()
	episodesRouter.Get("/", func(w http.ResponseWriter, r *http.Request) {
		pageNumber, errs := parsePageParam(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		page, err := env.catalog.GetEpisodePage(r.Context(), pageNumber)
		if err != nil {
			renderUpstreamError(w, r, err)
			return
		}

		render.JSON(w, r, page)
	})
	return episodesRouter
}
