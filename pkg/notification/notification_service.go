package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"github.com/lavanyassgit/Medicine-AI/pkg/assistant"
)

const (
	CategoryStock = "Stock"
	SourceSystem  = "MediCheck"
	SeverityHigh  = "high"
)

type (
	NotificationService interface {
		GetAlerts(ctx context.Context, req domain.NewsAlertQuery) ([]domain.NewsAlertResponse, error)
		// Notify records an out-of-stock alert raised by the assistant.
		Notify(ctx context.Context, alert assistant.StockAlert) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetAlerts(ctx context.Context, req domain.NewsAlertQuery) ([]domain.NewsAlertResponse, error) {
	alerts, err := s.notificationRepository.ListAlerts(ctx, req.Category, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	response := make([]domain.NewsAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		response = append(response, domain.NewsAlertResponse{
			ID:          a.ID.String(),
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
			Category:    a.Category,
			Severity:    a.Severity,
		})
	}
	return response, nil
}

func (s *notificationService) Notify(ctx context.Context, alert assistant.StockAlert) error {
	return s.notificationRepository.CreateAlert(ctx, &entities.NewsAlert{
		ID:          uuid.New(),
		Title:       alert.Title(),
		Description: alert.Description(),
		Source:      SourceSystem,
		PublishedAt: alert.RaisedAt,
		Category:    CategoryStock,
		Severity:    SeverityHigh,
	})
}
