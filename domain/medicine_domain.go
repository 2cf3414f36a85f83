package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSubmitScan      = "medicine scanned successfully"
	MessageSuccessGetScans        = "scans retrieved successfully"
	MessageSuccessGetScan         = "scan retrieved successfully"
	MessageSuccessMarkReviewed    = "the report has been marked as reviewed"
	MessageSuccessDeleteScan      = "the scan has been removed successfully"
	MessageSuccessGetDashboard    = "dashboard statistics retrieved successfully"
	MessageSuccessGetReports      = "reports retrieved successfully"
	MessageSuccessExportReports   = "reports exported successfully"
	MessageSuccessDownloadReport  = "the report has been downloaded successfully"
	MessageFailedSubmitScan       = "failed to save scan"
	MessageFailedGetScans         = "error loading data"
	MessageFailedGetScan          = "error loading report"
	MessageFailedMarkReviewed     = "error updating report"
	MessageFailedDeleteScan       = "error deleting scan"
	MessageFailedGetDashboard     = "failed to retrieve dashboard statistics"
	MessageFailedGetReports       = "error loading reports"
	MessageFailedExportReports    = "failed to export reports"
	MessageNoDataToExport         = "no data to export, apply filters to see reports before exporting"
	MessageFailedDownloadReport   = "failed to download report"
	MessageAuthenticationRequired = "please log in to view reports"

	ErrScanNotFound        = errors.New("scan not found")
	ErrUnauthorizedAccess  = errors.New("unauthorized access to scan")
	ErrNoDataToExport      = errors.New("no data to export")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrInvalidQualityScore = errors.New("quality score must be between 0 and 100")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrAnalysisFailed      = errors.New("quality analysis failed")
)

const (
	DateLayout     = "2006-01-02"
	StatusAll      = "all"
	RecentScanSize = 3
	TrendSize      = 15
)

type (
	SubmitScanRequest struct {
		MedicineName string                `json:"medicine_name" form:"medicine_name"`
		BatchNumber  string                `json:"batch_number" form:"batch_number"`
		Manufacturer string                `json:"manufacturer" form:"manufacturer"`
		Dosage       string                `json:"dosage" form:"dosage"`
		ExpiryDate   string                `json:"expiry_date" form:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		Image        *multipart.FileHeader `json:"-" form:"-"`
	}

	SubmitScanResponse struct {
		Scan   ScanResponse `json:"scan"`
		Issues []string     `json:"issues"`
	}

	DateRangeQuery struct {
		From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
		To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	}

	ReportQuery struct {
		From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
		To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
		Search string `query:"q"`
		Status string `query:"status" validate:"omitempty,oneof=all passed warning failed"`
	}

	CheckResponse struct {
		Status  string `json:"status"`
		Score   int    `json:"score"`
		Details string `json:"details"`
	}

	ScanResponse struct {
		ID              string                   `json:"id"`
		MedicineName    *string                  `json:"medicine_name"`
		BatchNumber     *string                  `json:"batch_number"`
		Manufacturer    *string                  `json:"manufacturer"`
		Dosage          *string                  `json:"dosage"`
		ScanDate        time.Time                `json:"scan_date"`
		ExpiryDate      *string                  `json:"expiry_date"`
		QualityScore    *int                     `json:"quality_score"`
		IsApproved      *bool                    `json:"is_approved"`
		Status          string                   `json:"status"`
		ImageURL        string                   `json:"image_url,omitempty"`
		AnalysisDetails map[string]CheckResponse `json:"analysis_details"`
	}

	SummaryResponse struct {
		TotalScans   int `json:"total_scans"`
		PassedScans  int `json:"passed_scans"`
		WarningScans int `json:"warning_scans"`
		FailedScans  int `json:"failed_scans"`
	}

	TrendPointResponse struct {
		ID       string    `json:"id"`
		ScanDate time.Time `json:"scan_date"`
		Passed   *int      `json:"passed"`
		Warning  *int      `json:"warning"`
		Failed   *int      `json:"failed"`
		Total    *int      `json:"total"`
	}

	DashboardResponse struct {
		Summary       SummaryResponse      `json:"summary"`
		PassRate      int                  `json:"pass_rate"`
		WarningRate   int                  `json:"warning_rate"`
		RejectionRate int                  `json:"rejection_rate"`
		RecentScans   []ScanResponse       `json:"recent_scans"`
		Trend         []TrendPointResponse `json:"trend"`
	}

	ExportFile struct {
		Filename    string
		ContentType string
		Content     []byte
		Count       int
	}
)

func (q ReportQuery) Range() DateRangeQuery {
	return DateRangeQuery{From: q.From, To: q.To}
}
