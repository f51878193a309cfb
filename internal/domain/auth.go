package domain

import "github.com/google/uuid"

type AuthInfo struct {
	UserID uuid.UUID `json:"user_id"`
}
