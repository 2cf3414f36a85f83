package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicineScan is one submitted quality scan. Status is never stored; it is
// derived from QualityScore and IsApproved on every read.
type MedicineScan struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	MedicineName    *string        `json:"medicine_name"`
	BatchNumber     *string        `json:"batch_number"`
	Manufacturer    *string        `json:"manufacturer"`
	Dosage          *string        `json:"dosage"`
	ScanDate        time.Time      `gorm:"index;not null" json:"scan_date"`
	ExpiryDate      *time.Time     `gorm:"type:date" json:"expiry_date"`
	QualityScore    *int           `gorm:"check:quality_score >= 0 AND quality_score <= 100" json:"quality_score"`
	IsApproved      *bool          `json:"is_approved"`
	ImageURL        string         `json:"image_url,omitempty"`
	AnalysisDetails datatypes.JSON `gorm:"type:jsonb" json:"analysis_details"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
