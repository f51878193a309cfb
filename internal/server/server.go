//go:generate go run github.com/abice/go-enum@v0.5.6

package server

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/technopolitica/morty/internal/client"
	"github.com/technopolitica/morty/internal/domain"
	"github.com/technopolitica/morty/internal/navigation"
)

const defaultRequestTimeout = 15 * time.Second

type Config struct {
	Repository     domain.CharacterRepository
	Catalog        domain.Catalog
	PublicKey      *rsa.PublicKey
	RequestTimeout time.Duration
}

type Env struct {
	repo    domain.CharacterRepository
	catalog domain.Catalog
}

type authClaims struct {
	jwt.RegisteredClaims
	domain.AuthInfo
}

func GetAuthInfo(r *http.Request) (auth domain.AuthInfo) {
	ctx := r.Context()
	auth, ok := ctx.Value(ContextKeyAuth).(domain.AuthInfo)
	if !ok {
		panic("missing required AuthInfo")
	}
	return
}

// ENUM(auth)
type contextKey int

func parseBearerToken(r *http.Request) (bearerToken string, err error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		err = fmt.Errorf("missing required Authorization header")
		return
	}
	bearerToken, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		err = fmt.Errorf("unsupported or malformed Authorization header (only Bearer scheme is supported)")
		return
	}
	if bearerToken == "" {
		err = fmt.Errorf("malformed Authorization header missing bearer token")
		return
	}
	return
}

func checkAuthentication(r *http.Request, publicKey *rsa.PublicKey) (authInfo domain.AuthInfo, err error) {
	bearerToken, err := parseBearerToken(r)
	if err != nil {
		return
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name, jwt.SigningMethodRS384.Name, jwt.SigningMethodRS512.Name}))
	var claims authClaims
	authToken, err := parser.ParseWithClaims(bearerToken, &claims, func(t *jwt.Token) (interface{}, error) {
		return publicKey, nil
	})
	if err != nil {
		err = fmt.Errorf("invalid auth token: %w", err)
		return
	}
	if !authToken.Valid {
		err = fmt.Errorf("invalid auth token")
		return
	}
	if claims.UserID == uuid.Nil {
		err = fmt.Errorf("invalid auth token: missing user_id claim")
		return
	}
	authInfo = claims.AuthInfo
	return
}

func authentication(publicKey *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authInfo, err := checkAuthentication(r, publicKey)
			if err != nil {
				log.Printf("%s", err)
				w.Header().Set("WWW-Authenticate", `Bearer, charset="UTF-8"`)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), ContextKeyAuth, authInfo))
			next.ServeHTTP(w, r)
		})
	}
}

func addHostToRequestURL(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Host = r.Host
		if r.TLS != nil {
			r.URL.Scheme = "https"
		} else {
			r.URL.Scheme = "http"
		}
		next.ServeHTTP(w, r)
	})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, apiErr domain.ApiError) {
	render.Status(r, status)
	render.JSON(w, r, apiErr)
}

func renderBadParams(w http.ResponseWriter, r *http.Request, errs []string) {
	renderError(w, r, http.StatusBadRequest, domain.ApiError{
		Type:    domain.ApiErrorTypeBadParam,
		Details: errs,
	})
}

func renderUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, client.ErrNotFound) {
		renderError(w, r, http.StatusNotFound, domain.ApiError{Type: domain.ApiErrorTypeNotFound})
		return
	}
	log.Printf("failed to query catalog: %s", err)
	renderError(w, r, http.StatusBadGateway, domain.ApiError{
		Type:    domain.ApiErrorTypeUpstreamUnavailable,
		Details: []string{},
	})
}

// FIXME: probably MUCH better to use JWKS here so we don't have to restart the server to change keys.
func New(cfg Config) *chi.Mux {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/health"))
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(addHostToRequestURL)

	env := Env{repo: cfg.Repository, catalog: cfg.Catalog}

	router.Get("/tabs", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, navigation.Destinations)
	})
	router.Mount("/characters", NewCharactersRouter(&env))
	router.Mount("/episodes", NewEpisodesRouter(&env))

	router.Group(func(r chi.Router) {
		r.Use(authentication(cfg.PublicKey))
		r.Mount("/saved", NewSavedRouter(&env))
	})

	return router
}
