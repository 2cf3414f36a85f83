package notification

import (
	"context"

	"github.com/lavanyassgit/Medicine-AI/entities"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateAlert(ctx context.Context, alert *entities.NewsAlert) error
		// ListAlerts returns the newest alerts first. limit <= 0 means all.
		ListAlerts(ctx context.Context, category string, limit int) ([]*entities.NewsAlert, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateAlert(ctx context.Context, alert *entities.NewsAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *notificationRepository) ListAlerts(ctx context.Context, category string, limit int) ([]*entities.NewsAlert, error) {
	var alerts []*entities.NewsAlert

	query := r.db.WithContext(ctx).Order("published_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
