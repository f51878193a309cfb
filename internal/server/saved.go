package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/technopolitica/morty/internal/db"
	"github.com/technopolitica/morty/internal/domain"
)

const MAX_RESULTS_LIMIT = 20

type ListSavedParams struct {
	Limit  int
	Offset int
}

func parseListSavedParams(r *http.Request) (params ListSavedParams, errs []string) {
	var err error
	offset := r.URL.Query().Get("page[offset]")
	if offset != "" {
		params.Offset, err = strconv.Atoi(offset)
		if err != nil || params.Offset < 0 {
			errs = append(errs, "page[offset]: must be non-negative integer")
		} else if params.Offset > math.MaxInt32 {
			errs = append(errs, fmt.Sprintf("page[offset]: must be less than or equal to %d", math.MaxInt32))
		}
	}

	limit := r.URL.Query().Get("page[limit]")
	if limit == "" {
		errs = append(errs, "page[limit]: missing required parameter")
	} else {
		params.Limit, err = strconv.Atoi(limit)
		if err != nil || params.Limit <= 0 {
			errs = append(errs, "page[limit]: must be a positive integer")
		}
		if params.Limit > MAX_RESULTS_LIMIT {
			params.Limit = MAX_RESULTS_LIMIT
			errs = append(errs, fmt.Sprintf("page[limit]: must be less than or equal to %d", MAX_RESULTS_LIMIT))
		}
	}

	return
}

func paginationLinks(requestURL domain.URL, params ListSavedParams, total int64) (links domain.PaginationLinks) {
	first := requestURL.WithQueryParam("page[offset]", 0)
	lastOffset := 0
	if total > 0 {
		lastOffset = (int(total-1) / params.Limit) * params.Limit
	}
	last := requestURL.WithQueryParam("page[offset]", lastOffset)
	links.First = first.String()
	links.Last = last.String()

	prevOffset := params.Offset - params.Limit
	// A nonsensical offset past the end points prev at the last page.
	if prevOffset > lastOffset {
		prevOffset = lastOffset
	}
	if prevOffset >= 0 {
		links.Prev = requestURL.WithQueryParam("page[offset]", prevOffset).String()
	}
	nextOffset := params.Offset + params.Limit
	if nextOffset <= lastOffset {
		links.Next = requestURL.WithQueryParam("page[offset]", nextOffset).String()
	}
	return
}

func NewSavedRouter(env *Env) *chi.Mux {
	savedRouter := chi.NewRouter()
	savedRouter.Get("/", func(w http.ResponseWriter, r *http.Request) {
		params, errs := parseListSavedParams(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		auth := GetAuthInfo(r)
		page, err := env.repo.ListSavedCharacters(r.Context(), domain.ListSavedCharactersParams{
			UserID: auth.UserID,
			Limit:  int32(params.Limit),
			Offset: int32(params.Offset),
		})
		if err != nil {
			log.Printf("failed to list saved characters: %s", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		saved := page.Items
		if saved == nil {
			saved = []domain.SavedCharacter{}
		}

		// FIXME: we can't use render.JSON here because the default json.Marshal implementation
		// escapes HTML characters (including the ampersand '&'), which mangles the links.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		err = encoder.Encode(domain.PaginatedSavedCharactersResponse{
			PaginatedResponse: domain.PaginatedResponse{
				Version: "1.0.0",
				Links:   paginationLinks(domain.URL{URL: r.URL}, params, page.Total),
			},
			Saved: saved,
		})
		if err != nil {
			log.Printf("failed to write response: %s", err)
		}
	})
	savedRouter.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, errs := parseCharacterID(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		ctx := r.Context()
		character, err := env.ensureCharacterCached(ctx, id)
		if errors.Is(err, errCacheUnavailable) {
			log.Printf("failed to cache character before saving: %s", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if err != nil {
			renderUpstreamError(w, r, err)
			return
		}

		auth := GetAuthInfo(r)
		err = env.repo.SaveCharacter(ctx, domain.SaveCharacterParams{
			UserID:      auth.UserID,
			CharacterID: id,
		})
		if errors.Is(err, db.ErrConflict) {
			renderError(w, r, http.StatusConflict, domain.ApiError{
				Type:    domain.ApiErrorTypeAlreadySaved,
				Details: []string{fmt.Sprintf("character %d is already saved", id)},
			})
			return
		}
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, http.StatusNotFound, domain.ApiError{Type: domain.ApiErrorTypeNotFound})
			return
		}
		if err != nil {
			log.Printf("failed to save character: %s", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, character)
	})
	savedRouter.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, errs := parseCharacterID(r)
		if len(errs) > 0 {
			renderBadParams(w, r, errs)
			return
		}

		auth := GetAuthInfo(r)
		err := env.repo.UnsaveCharacter(r.Context(), domain.SaveCharacterParams{
			UserID:      auth.UserID,
			CharacterID: id,
		})
		if errors.Is(err, db.ErrNotFound) {
			renderError(w, r, http.StatusNotFound, domain.ApiError{Type: domain.ApiErrorTypeNotFound})
			return
		}
		if err != nil {
			log.Printf("failed to unsave character: %s", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
	return savedRouter
}
