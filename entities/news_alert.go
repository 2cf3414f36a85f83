package entities

import (
	"time"

	"github.com/google/uuid"
)

type NewsAlert struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"` // high, medium, low

	Timestamp
}
