package medicine

import (
	"context"
	"time"

	"github.com/lavanyassgit/Medicine-AI/entities"
	"gorm.io/gorm"
)

type (
	MedicineRepository interface {
		CreateScan(ctx context.Context, scan *entities.MedicineScan) error
		GetScanByID(ctx context.Context, id string) (*entities.MedicineScan, error)
		// ListScans returns the user's scans newest first. A nil bound is open.
		ListScans(ctx context.Context, userID string, from, to *time.Time) ([]*entities.MedicineScan, error)
		MarkReviewed(ctx context.Context, id string) error
		DeleteScan(ctx context.Context, id string) error
	}

	medicineRepository struct {
		db *gorm.DB
	}
)

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) CreateScan(ctx context.Context, scan *entities.MedicineScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *medicineRepository) GetScanByID(ctx context.Context, id string) (*entities.MedicineScan, error) {
	var scan entities.MedicineScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *medicineRepository) ListScans(ctx context.Context, userID string, from, to *time.Time) ([]*entities.MedicineScan, error) {
	var scans []*entities.MedicineScan

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("scan_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("scan_date <= ?", *to)
	}

	if err := query.Order("scan_date DESC").Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

// MarkReviewed only ever sets is_approved to true.
func (r *medicineRepository) MarkReviewed(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.MedicineScan{}).
		Where("id = ?", id).
		Update("is_approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *medicineRepository) DeleteScan(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MedicineScan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
