package medicine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"github.com/lavanyassgit/Medicine-AI/internal/utils/storage"
	"github.com/lavanyassgit/Medicine-AI/pkg/analysis"
	"github.com/lavanyassgit/Medicine-AI/pkg/quality"
	"github.com/lavanyassgit/Medicine-AI/pkg/report"
	"gorm.io/gorm"
)

const (
	defaultMedicineName = "Sample Medicine"
	defaultManufacturer = "Unknown"
	defaultDosage       = "N/A"
	scanFolder          = "medicine-scans"
)

type (
	MedicineService interface {
		SubmitScan(ctx context.Context, req domain.SubmitScanRequest, userID string) (domain.SubmitScanResponse, error)
		GetScans(ctx context.Context, req domain.DateRangeQuery, userID string) ([]domain.ScanResponse, error)
		GetScanByID(ctx context.Context, id string, userID string) (domain.ScanResponse, error)
		MarkReviewed(ctx context.Context, id string, userID string) (domain.ScanResponse, error)
		DeleteScan(ctx context.Context, id string, userID string) error
		GetDashboard(ctx context.Context, req domain.DateRangeQuery, userID string) (domain.DashboardResponse, error)
		GetReports(ctx context.Context, req domain.ReportQuery, userID string) ([]domain.ScanResponse, error)
		ExportReports(ctx context.Context, req domain.ReportQuery, userID string) (domain.ExportFile, error)
		ExportSnapshot(ctx context.Context, id string, userID string) (domain.ExportFile, error)
	}

	medicineService struct {
		medicineRepository MedicineRepository
		provider           analysis.Provider
		s3                 storage.AwsS3
		exporter           *report.Exporter
		location           *time.Location
		now                func() time.Time
	}
)

// NewMedicineService accepts a nil s3, in which case scan images are not kept.
func NewMedicineService(
	medicineRepository MedicineRepository,
	provider analysis.Provider,
	s3 storage.AwsS3,
	location *time.Location,
) MedicineService {
	return &medicineService{
		medicineRepository: medicineRepository,
		provider:           provider,
		s3:                 s3,
		exporter:           report.NewExporter(location),
		location:           location,
		now:                time.Now,
	}
}

func (s *medicineService) SubmitScan(ctx context.Context, req domain.SubmitScanRequest, userID string) (domain.SubmitScanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubmitScanResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.ParseInLocation(domain.DateLayout, req.ExpiryDate, s.location)
		if err != nil {
			return domain.SubmitScanResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	now := s.now()
	scan := &entities.MedicineScan{
		ID:           uuid.New(),
		UserID:       userUUID,
		MedicineName: withDefault(req.MedicineName, defaultMedicineName),
		BatchNumber:  withDefault(req.BatchNumber, fmt.Sprintf("BATCH-%d", now.UnixMilli())),
		Manufacturer: withDefault(req.Manufacturer, defaultManufacturer),
		Dosage:       withDefault(req.Dosage, defaultDosage),
		ScanDate:     now,
		ExpiryDate:   expiryDate,
	}

	objectKey := ""
	if req.Image != nil && s.s3 != nil {
		objectKey, err = s.s3.UploadFile(ctx, "scan-"+scan.ID.String(), req.Image, scanFolder, storage.AllowImage...)
		if err != nil {
			return domain.SubmitScanResponse{}, err
		}
		scan.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	result, err := s.provider.Analyze(ctx, analysis.Input{
		MedicineName: *scan.MedicineName,
		BatchNumber:  *scan.BatchNumber,
		Image:        req.Image,
	})
	if err != nil {
		s.discardImage(ctx, objectKey)
		return domain.SubmitScanResponse{}, fmt.Errorf("analyze scan: %w", err)
	}
	if result.Score < 0 || result.Score > 100 {
		s.discardImage(ctx, objectKey)
		return domain.SubmitScanResponse{}, domain.ErrInvalidQualityScore
	}

	details, err := result.Checks.Encode()
	if err != nil {
		s.discardImage(ctx, objectKey)
		return domain.SubmitScanResponse{}, err
	}
	score := result.Score
	scan.QualityScore = &score
	scan.AnalysisDetails = details

	if err := s.medicineRepository.CreateScan(ctx, scan); err != nil {
		s.discardImage(ctx, objectKey)
		return domain.SubmitScanResponse{}, fmt.Errorf("create scan: %w", err)
	}

	return domain.SubmitScanResponse{
		Scan:   s.toScanResponse(scan),
		Issues: result.Issues,
	}, nil
}

func (s *medicineService) GetScans(ctx context.Context, req domain.DateRangeQuery, userID string) ([]domain.ScanResponse, error) {
	scans, err := s.listScans(ctx, req, userID)
	if err != nil {
		return nil, err
	}
	return s.toScanResponses(scans), nil
}

func (s *medicineService) GetScanByID(ctx context.Context, id string, userID string) (domain.ScanResponse, error) {
	scan, err := s.ownedScan(ctx, id, userID)
	if err != nil {
		return domain.ScanResponse{}, err
	}
	return s.toScanResponse(scan), nil
}

func (s *medicineService) MarkReviewed(ctx context.Context, id string, userID string) (domain.ScanResponse, error) {
	scan, err := s.ownedScan(ctx, id, userID)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	if scan.IsApproved == nil || !*scan.IsApproved {
		if err := s.medicineRepository.MarkReviewed(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ScanResponse{}, domain.ErrScanNotFound
			}
			return domain.ScanResponse{}, fmt.Errorf("mark scan reviewed: %w", err)
		}
		approved := true
		scan.IsApproved = &approved
	}

	return s.toScanResponse(scan), nil
}

func (s *medicineService) DeleteScan(ctx context.Context, id string, userID string) error {
	scan, err := s.ownedScan(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.medicineRepository.DeleteScan(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScanNotFound
		}
		return fmt.Errorf("delete scan: %w", err)
	}

	if scan.ImageURL != "" && s.s3 != nil {
		s.discardImage(ctx, s.s3.GetObjectKeyFromLink(scan.ImageURL))
	}
	return nil
}

func (s *medicineService) GetDashboard(ctx context.Context, req domain.DateRangeQuery, userID string) (domain.DashboardResponse, error) {
	scans, err := s.listScans(ctx, req, userID)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	summary := quality.Summarize(scans)
	recent := scans[:min(len(scans), domain.RecentScanSize)]

	trend := quality.TrendSeries(scans, domain.TrendSize)
	points := make([]domain.TrendPointResponse, 0, len(trend))
	for _, p := range trend {
		points = append(points, domain.TrendPointResponse{
			ID:       p.ID.String(),
			ScanDate: p.ScanDate,
			Passed:   p.Passed,
			Warning:  p.Warning,
			Failed:   p.Failed,
			Total:    p.Total,
		})
	}

	return domain.DashboardResponse{
		Summary: domain.SummaryResponse{
			TotalScans:   summary.Total,
			PassedScans:  summary.PassedCount,
			WarningScans: summary.WarningCount,
			FailedScans:  summary.FailedCount,
		},
		PassRate:      quality.Rate(summary.PassedCount, summary.Total),
		WarningRate:   quality.Rate(summary.WarningCount, summary.Total),
		RejectionRate: quality.Rate(summary.FailedCount, summary.Total),
		RecentScans:   s.toScanResponses(recent),
		Trend:         points,
	}, nil
}

func (s *medicineService) GetReports(ctx context.Context, req domain.ReportQuery, userID string) ([]domain.ScanResponse, error) {
	scans, err := s.reportScans(ctx, req, userID)
	if err != nil {
		return nil, err
	}
	return s.toScanResponses(scans), nil
}

func (s *medicineService) ExportReports(ctx context.Context, req domain.ReportQuery, userID string) (domain.ExportFile, error) {
	scans, err := s.reportScans(ctx, req, userID)
	if err != nil {
		return domain.ExportFile{}, err
	}
	return s.exporter.CSV(scans)
}

func (s *medicineService) ExportSnapshot(ctx context.Context, id string, userID string) (domain.ExportFile, error) {
	scan, err := s.ownedScan(ctx, id, userID)
	if err != nil {
		return domain.ExportFile{}, err
	}
	return s.exporter.Snapshot(scan)
}

func (s *medicineService) reportScans(ctx context.Context, req domain.ReportQuery, userID string) ([]*entities.MedicineScan, error) {
	var status quality.Status
	if req.Status != "" && req.Status != domain.StatusAll {
		parsed, ok := quality.ParseStatus(req.Status)
		if !ok {
			return nil, domain.ErrInvalidStatusFilter
		}
		status = parsed
	}

	scans, err := s.listScans(ctx, req.Range(), userID)
	if err != nil {
		return nil, err
	}
	return quality.Filter(scans, req.Search, status), nil
}

func (s *medicineService) listScans(ctx context.Context, req domain.DateRangeQuery, userID string) ([]*entities.MedicineScan, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	from, to, err := s.dateRange(req)
	if err != nil {
		return nil, err
	}

	scans, err := s.medicineRepository.ListScans(ctx, userID, from, to)
	if err != nil {
		log.Errorw("failed to list scans", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list scans: %w", err)
	}
	return scans, nil
}

// dateRange resolves both bounds inclusively in the configured location.
// The upper bound covers the whole of its day.
func (s *medicineService) dateRange(req domain.DateRangeQuery) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if req.From != "" {
		parsed, err := time.ParseInLocation(domain.DateLayout, req.From, s.location)
		if err != nil {
			return nil, nil, domain.ErrInvalidDateRange
		}
		from = &parsed
	}
	if req.To != "" {
		parsed, err := time.ParseInLocation(domain.DateLayout, req.To, s.location)
		if err != nil {
			return nil, nil, domain.ErrInvalidDateRange
		}
		end := parsed.AddDate(0, 0, 1).Add(-time.Millisecond)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, domain.ErrInvalidDateRange
	}
	return from, to, nil
}

func (s *medicineService) ownedScan(ctx context.Context, id string, userID string) (*entities.MedicineScan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrScanNotFound
	}

	scan, err := s.medicineRepository.GetScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScanNotFound
		}
		return nil, fmt.Errorf("get scan: %w", err)
	}

	if scan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return scan, nil
}

func (s *medicineService) discardImage(ctx context.Context, objectKey string) {
	if objectKey == "" || s.s3 == nil {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Warnw("failed to remove scan image", "key", objectKey, "error", err)
	}
}

func (s *medicineService) toScanResponses(scans []*entities.MedicineScan) []domain.ScanResponse {
	response := make([]domain.ScanResponse, 0, len(scans))
	for _, scan := range scans {
		response = append(response, s.toScanResponse(scan))
	}
	return response
}

func (s *medicineService) toScanResponse(scan *entities.MedicineScan) domain.ScanResponse {
	var expiry *string
	if scan.ExpiryDate != nil {
		formatted := scan.ExpiryDate.Format(domain.DateLayout)
		expiry = &formatted
	}

	checks := map[string]domain.CheckResponse{}
	details, err := entities.DecodeAnalysisDetails(scan.AnalysisDetails)
	if err != nil {
		log.Warnw("stored analysis details rejected", "scan_id", scan.ID, "error", err)
	}
	for kind, check := range details {
		checks[string(kind)] = domain.CheckResponse{
			Status:  check.Status,
			Score:   check.Score,
			Details: check.Details,
		}
	}

	return domain.ScanResponse{
		ID:              scan.ID.String(),
		MedicineName:    scan.MedicineName,
		BatchNumber:     scan.BatchNumber,
		Manufacturer:    scan.Manufacturer,
		Dosage:          scan.Dosage,
		ScanDate:        scan.ScanDate,
		ExpiryDate:      expiry,
		QualityScore:    scan.QualityScore,
		IsApproved:      scan.IsApproved,
		Status:          string(quality.StatusOf(scan)),
		ImageURL:        scan.ImageURL,
		AnalysisDetails: checks,
	}
}

func withDefault(value, fallback string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	return &value
}
