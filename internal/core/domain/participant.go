package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a registered principal. Its ID is the Identity used
// throughout the accumulator and capability modules.
type Participant struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Argon2id, never exposed
	CreatedAt    time.Time `json:"created_at"`
}
