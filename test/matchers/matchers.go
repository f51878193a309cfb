// Package matchers holds gomega matchers for the API's JSON responses.
package matchers

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
)

func decodeJSONBody(body []byte) (object map[string]any, err error) {
	err = json.Unmarshal(body, &object)
	if err != nil {
		err = fmt.Errorf("response body is not a JSON object: %w\n%s", err, format.Object(string(body), 1))
	}
	return
}

// HaveJSONBody reads an *http.Response body. A matcher is applied to the
// decoded JSON object; any other value must serialize to JSON equal to the
// body.
func HaveJSONBody(expected any) OmegaMatcher {
	if matcher, ok := expected.(OmegaMatcher); ok {
		return HaveHTTPBody(WithTransform(decodeJSONBody, matcher))
	}
	expectedJSON, err := json.Marshal(expected)
	if err != nil {
		// KLUDGE: matchers have no error channel at construction time.
		panic(err)
	}
	return HaveHTTPBody(MatchJSON(expectedJSON))
}

// HaveAPIError matches an *http.Response carrying the error envelope of the
// given type. When details are passed error_details must hold exactly those.
func HaveAPIError(errorType string, details ...string) OmegaMatcher {
	envelope := []OmegaMatcher{HaveKeyWithValue("error", errorType)}
	if len(details) > 0 {
		envelope = append(envelope, HaveKeyWithValue("error_details", ConsistOf(JSONValue(details))))
	}
	return HaveJSONBody(SatisfyAll(envelope...))
}

// JSONValue round-trips value through encoding/json so it compares equal to
// decoded response fields (numbers become float64, slices []any).
func JSONValue(value any) (output any) {
	serializedValue, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	err = json.Unmarshal(serializedValue, &output)
	if err != nil {
		panic(err)
	}
	return
}
