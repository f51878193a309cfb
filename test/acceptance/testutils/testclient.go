package testutils

import (
	"crypto/rsa"
	"fmt"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	. "github.com/onsi/gomega"
)

type TestClient struct {
	baseURL    url.URL
	authToken  string
	signingKey rsa.PrivateKey
}

func NewTestClient(baseURL url.URL, signingKey rsa.PrivateKey) *TestClient {
	return &TestClient{baseURL: baseURL, signingKey: signingKey}
}

func (client *TestClient) endpoint(path ...string) *url.URL {
	return client.baseURL.JoinPath(path...)
}

func (client *TestClient) authenticateWithAuthToken(signingMethod jwt.SigningMethod, key any, claims jwt.Claims) {
	authToken := jwt.NewWithClaims(signingMethod, claims)
	var err error
	client.authToken, err = authToken.SignedString(key)
	Expect(err).NotTo(HaveOccurred())
}

type userClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

func (client *TestClient) AuthenticateWithUnsignedJWT() {
	client.authenticateWithAuthToken(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, userClaims{
		UserID: GenerateRandomUUID(),
	})
}

func (client *TestClient) AuthenticateAsUser(userID uuid.UUID) {
	client.authenticateWithAuthToken(jwt.SigningMethodRS256, &client.signingKey, userClaims{
		UserID: userID,
	})
}

func (client *TestClient) Unauthenticate() {
	client.authToken = ""
}

func (client *TestClient) BaseURL() *url.URL {
	copy := client.baseURL
	return &copy
}

func (client *TestClient) sendRequestWithDefaultHeaders(method string, endpoint *url.URL) (res *http.Response) {
	req, err := http.NewRequest(method, endpoint.String(), nil)
	Expect(err).NotTo(HaveOccurred())
	if client.authToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", client.authToken))
	}
	req.Header.Set("Accept", "application/json")

	res, err = http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	return
}

// Get requests an absolute URL or a path relative to the server, e.g. a
// pagination link.
func (client *TestClient) Get(link string) (response *http.Response) {
	uri, err := url.Parse(link)
	Expect(err).NotTo(HaveOccurred())
	endpoint := client.baseURL.JoinPath(uri.Path)
	endpoint.RawQuery = uri.RawQuery
	return client.sendRequestWithDefaultHeaders(http.MethodGet, endpoint)
}

func (client *TestClient) ListCharacters(page int) (response *http.Response) {
	endpoint := client.endpoint("characters")
	if page != 0 {
		endpoint.RawQuery = url.Values{"page": {fmt.Sprint(page)}}.Encode()
	}
	return client.sendRequestWithDefaultHeaders(http.MethodGet, endpoint)
}

func (client *TestClient) GetCharacter(id string) (response *http.Response) {
	return client.sendRequestWithDefaultHeaders(http.MethodGet, client.endpoint("characters", id))
}

func (client *TestClient) GetCharacterEpisodes(id string) (response *http.Response) {
	return client.sendRequestWithDefaultHeaders(http.MethodGet, client.endpoint("characters", id, "episodes"))
}

func (client *TestClient) ListEpisodes(page int) (response *http.Response) {
	endpoint := client.endpoint("episodes")
	if page != 0 {
		endpoint.RawQuery = url.Values{"page": {fmt.Sprint(page)}}.Encode()
	}
	return client.sendRequestWithDefaultHeaders(http.MethodGet, endpoint)
}

func (client *TestClient) SaveCharacter(id string) (response *http.Response) {
	return client.sendRequestWithDefaultHeaders(http.MethodPut, client.endpoint("saved", id))
}

func (client *TestClient) UnsaveCharacter(id string) (response *http.Response) {
	return client.sendRequestWithDefaultHeaders(http.MethodDelete, client.endpoint("saved", id))
}

type ListSavedOptions struct {
	Limit  int
	Offset int
}

func (client *TestClient) ListSaved(options ListSavedOptions) (response *http.Response) {
	endpoint := client.endpoint("saved")
	query := endpoint.Query()
	// Default to a limit of 10 so that the zero value of the options keeps tests readable.
	if options.Limit == 0 {
		options.Limit = 10
	}
	query.Add("page[limit]", fmt.Sprint(options.Limit))
	if options.Offset != 0 {
		query.Add("page[offset]", fmt.Sprint(options.Offset))
	}
	endpoint.RawQuery = query.Encode()
	return client.sendRequestWithDefaultHeaders(http.MethodGet, endpoint)
}
