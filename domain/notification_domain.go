package domain

import (
	"time"
)

var (
	MessageSuccessGetAlerts = "news alerts retrieved successfully"
	MessageFailedGetAlerts  = "failed to retrieve news alerts"
)

type NewsAlertQuery struct {
	Category string `query:"category"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type NewsAlertResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
}
