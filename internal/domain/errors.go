//go:generate go run github.com/abice/go-enum@v0.5.6 --marshal

package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ENUM(unknown, bad_param, not_found, already_saved, upstream_unavailable)
type ApiErrorType int

type ApiError struct {
	Type    ApiErrorType
	Details []string
}

func (res ApiError) Description() string {
	switch res.Type {
	case ApiErrorTypeBadParam:
		return "A validation error occurred"
	case ApiErrorTypeNotFound:
		return "The requested resource does not exist"
	case ApiErrorTypeAlreadySaved:
		return "This character is already saved"
	case ApiErrorTypeUpstreamUnavailable:
		return "The character catalog could not be reached"
	default:
		return "An unknown error occurred"
	}
}

func (res ApiError) MarshalJSON() ([]byte, error) {
	details := res.Details
	if details == nil {
		details = []string{}
	}
	return json.Marshal(struct {
		Type        ApiErrorType `json:"error"`
		Description string       `json:"error_description"`
		Details     []string     `json:"error_details"`
	}{
		Type:        res.Type,
		Description: res.Description(),
		Details:     details,
	})
}

func (res ApiError) Error() string {
	return fmt.Sprintf("%s: %s\n%s", res.Type, res.Description(), strings.Join(res.Details, "\n"))
}
