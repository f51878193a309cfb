package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/technopolitica/morty/internal/domain"
	"github.com/technopolitica/morty/internal/remote"
)

var _ domain.Catalog = (*Client)(nil)

const DefaultBaseURL = "https://rickandmortyapi.com/api"

const defaultTimeout = 10 * time.Second

var ErrNotFound = errors.New("not found")

// APIError is returned for any non-2xx upstream response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream responded with HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream responded with HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    domain.URL
	httpClient *http.Client
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.httpClient = &http.Client{Timeout: timeout}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(client *Client) {
		client.userAgent = userAgent
	}
}

func New(baseURL string, opts ...Option) (client *Client, err error) {
	parsed, err := domain.ParseURL(baseURL)
	if err != nil {
		err = fmt.Errorf("failed to parse upstream base URL: %w", err)
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		err = fmt.Errorf("unsupported upstream URL scheme %q", parsed.Scheme)
		return
	}
	client = &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  "morty",
	}
	for _, opt := range opts {
		opt(client)
	}
	return
}

func (client *Client) endpoint(path ...string) domain.URL {
	return domain.URL{URL: client.baseURL.JoinPath(path...)}
}

func (client *Client) get(ctx context.Context, endpoint domain.URL) (body []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		err = fmt.Errorf("failed to build request: %w", err)
		return
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", client.userAgent)

	res, err := client.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send request to %s: %w", endpoint.Path, err)
		return
	}
	defer res.Body.Close()

	body, err = io.ReadAll(res.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var errorBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errorBody) == nil {
			apiErr.Message = errorBody.Error
		}
		err = apiErr
		body = nil
	}
	return
}

func validatePage(page int) error {
	if page <= 0 {
		return fmt.Errorf("page must be a positive integer, got %d", page)
	}
	return nil
}

func (client *Client) GetCharacterPage(ctx context.Context, page int) (characterPage domain.CharacterPage, err error) {
	err = validatePage(page)
	if err != nil {
		return
	}
	body, err := client.get(ctx, client.endpoint("character").WithQueryParam("page", page))
	if err != nil {
		return
	}
	remotePage, err := remote.DecodeCharacterPage(body)
	if err != nil {
		return
	}
	characterPage = remote.ToDomainCharacterPage(remotePage)
	return
}

func (client *Client) GetCharacter(ctx context.Context, id int) (character domain.Character, err error) {
	body, err := client.get(ctx, client.endpoint("character", strconv.Itoa(id)))
	if err != nil {
		return
	}
	remoteCharacter, err := remote.DecodeCharacter(body)
	if err != nil {
		return
	}
	character = remote.ToDomainCharacter(remoteCharacter)
	return
}

// GetCharacters looks up several characters in a single request. The result
// is ordered by id and ids the upstream does not know are silently absent.
func (client *Client) GetCharacters(ctx context.Context, ids []int) (characters []domain.Character, err error) {
	set := domain.NewSet(ids...)
	switch len(set) {
	case 0:
		return []domain.Character{}, nil
	case 1:
		// A single id responds with an object instead of an array.
		var character domain.Character
		character, err = client.GetCharacter(ctx, set[0])
		if errors.Is(err, ErrNotFound) {
			return []domain.Character{}, nil
		}
		if err != nil {
			return
		}
		return []domain.Character{character}, nil
	}
	body, err := client.get(ctx, client.endpoint("character", set.Join(",")))
	if err != nil {
		return
	}
	remoteCharacters, err := remote.DecodeCharacters(body)
	if err != nil {
		return
	}
	characters = remote.ToDomainCharacters(remoteCharacters)
	return
}

func (client *Client) GetEpisodePage(ctx context.Context, page int) (episodePage domain.EpisodePage, err error) {
	err = validatePage(page)
	if err != nil {
		return
	}
	body, err := client.get(ctx, client.endpoint("episode").WithQueryParam("page", page))
	if err != nil {
		return
	}
	remotePage, err := remote.DecodeEpisodePage(body)
	if err != nil {
		return
	}
	episodePage = remote.ToDomainEpisodePage(remotePage)
	return
}

func (client *Client) GetEpisode(ctx context.Context, id int) (episode domain.Episode, err error) {
	body, err := client.get(ctx, client.endpoint("episode", strconv.Itoa(id)))
	if err != nil {
		return
	}
	remoteEpisode, err := remote.DecodeEpisode(body)
	if err != nil {
		return
	}
	episode = remote.ToDomainEpisode(remoteEpisode)
	return
}

func (client *Client) GetEpisodes(ctx context.Context, ids []int) (episodes []domain.Episode, err error) {
	set := domain.NewSet(ids...)
	switch len(set) {
	case 0:
		return []domain.Episode{}, nil
	case 1:
		var episode domain.Episode
		episode, err = client.GetEpisode(ctx, set[0])
		if errors.Is(err, ErrNotFound) {
			return []domain.Episode{}, nil
		}
		if err != nil {
			return
		}
		return []domain.Episode{episode}, nil
	}
	body, err := client.get(ctx, client.endpoint("episode", set.Join(",")))
	if err != nil {
		return
	}
	remoteEpisodes, err := remote.DecodeEpisodes(body)
	if err != nil {
		return
	}
	episodes = remote.ToDomainEpisodes(remoteEpisodes)
	return
}
