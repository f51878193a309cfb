package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/technopolitica/morty/internal/db"
	"github.com/technopolitica/morty/internal/domain"
)

func parsePageParam(r *http.Request) (page int, errs []string) {
	page = 1
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page <= 0 {
		errs = append(errs, "page: must be a positive integer")
	}
	return
}

func parseCharacterID(r *http.Request) (id int, errs []string) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errs = append(errs, "id: must be a positive integer")
		return
	}
	errs = domain.ValidateCharacterID(id)
	return
}

func (env *Env) cacheCharacters(ctx context.Context, characters []domain.Character) {
	if len(characters) == 0 {
		return
	}
	err := env.repo.UpsertCharacters(ctx, characters)
	if err != nil {
		log.Printf("failed to cache characters: %s", err)
	}
}

// lookupCharacter serves a character from the local cache, falling back to
// the catalog on a miss.
func (env *Env) lookupCharacter(ctx context.Context, id int) (character domain.Character, err error) {
	character, err = env.repo.FetchCharacter(ctx, id)
	if err == nil {
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		log.Printf("failed to fetch cached character %d: %s", id, err)
	}
	character, err = env.catalog.GetCharacter(ctx, id)
	if err != nil {
		return
	}
	env.cacheCharacters(ctx, []domain.Character{character})
	return
}

var errCacheUnavailable = errors.New("character cache unavailable")

// ensureCharacterCached is lookupCharacter for callers that need the
// character row to exist afterwards. Cache write failures are returned
// wrapped in errCacheUnavailable instead of being logged.
func (env *Env) ensureCharacterCached(ctx context.Context, id int) (character domain.Character, err error) {
	character, err = env.repo.FetchCharacter(ctx, id)
	if err == nil {
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		err = fmt.Errorf("%w: failed to fetch character %d: %w", errCacheUnavailable, id, err)
		return
	}
	character, err = env.catalog.GetCharacter(ctx, id)
	if err != nil {
		return
	}
	err = env.repo.UpsertCharacters(ctx, []domain.Character{character})
	if err != nil {
		err = fmt.Errorf("%w: failed to store character %d: %w", errCacheUnavailable, id, err)
	}
	return
}

func NewCharactersRouter(env *Env) *chi.Mux {
	charactersRouter := chi.NewRouter()
	charactersRouter.Get("/", func(w http.ResponseWriter, r *http.Request) {
		pageNumber, errs := parsePageParam(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		ctx := r.Context()
		page, err := env.catalog.GetCharacterPage(ctx, pageNumber)
		if err != nil {
			renderUpstreamError(w, r, err)
			return
		}
		env.cacheCharacters(ctx, page.Characters)

		render.JSON(w, r, page)
	})
	charactersRouter.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, errs := parseCharacterID(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		character, err := env.lookupCharacter(r.Context(), id)
		if err != nil {
			renderUpstreamError(w, r, err)
			return
		}

		render.JSON(w, r, character)
	})
	charactersRouter.Get("/{id}/episodes", func(w http.ResponseWriter, r *http.Request) {
		id, errs := parseCharacterID(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		ctx := r.Context()
		character, err := env.lookupCharacter(ctx, id)
		if err != nil {
			renderUpstreamError(w, r, err)
			return
		}

		episodes, err := env.catalog.GetEpisodes(ctx, character.EpisodeIDs)
		if err != nil {
			renderUpstreamError(w, r, err)
			return
		}
		if episodes == nil {
			episodes = []domain.Episode{}
		}

		render.JSON(w, r, episodes)
	})
	return charactersRouter
}
