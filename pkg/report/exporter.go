// Package report serializes scans into downloadable files.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"github.com/lavanyassgit/Medicine-AI/pkg/quality"
	"gorm.io/datatypes"
)

const (
	CSVContentType  = "text/csv;charset=utf-8"
	JSONContentType = "application/json"

	scanDateLayout   = "Jan 02, 2006 15:04"
	expiryDateLayout = "Jan 02, 2006"
	notAvailable     = "N/A"
)

var Header = []string{
	"Medicine Name",
	"Batch Number",
	"Manufacturer",
	"Scan Date",
	"Quality Score",
	"Status",
	"Expiry Date",
	"Dosage",
	"Approved",
}

type Exporter struct {
	location *time.Location
	now      func() time.Time
}

func NewExporter(location *time.Location) *Exporter {
	if location == nil {
		location = time.UTC
	}
	return &Exporter{location: location, now: time.Now}
}

// CSV renders scans as a header line followed by one row per scan. Every
// cell is wrapped in double quotes as-is; embedded quotes are not escaped.
func (e *Exporter) CSV(scans []*entities.MedicineScan) (domain.ExportFile, error) {
	if len(scans) == 0 {
		return domain.ExportFile{}, domain.ErrNoDataToExport
	}

	lines := make([]string, 0, len(scans)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, scan := range scans {
		row := e.Row(scan)
		for i, cell := range row {
			row[i] = `"` + cell + `"`
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return domain.ExportFile{
		Filename:    fmt.Sprintf("quality-reports-%s.csv", e.now().In(e.location).Format(domain.DateLayout)),
		ContentType: CSVContentType,
		Content:     []byte(strings.Join(lines, "\n")),
		Count:       len(scans),
	}, nil
}

// Row returns the unquoted cells for one scan, in Header order.
func (e *Exporter) Row(scan *entities.MedicineScan) []string {
	scanDate := notAvailable
	if !scan.ScanDate.IsZero() {
		scanDate = scan.ScanDate.In(e.location).Format(scanDateLayout)
	}
	score := notAvailable
	if scan.QualityScore != nil {
		score = strconv.Itoa(*scan.QualityScore)
	}
	expiry := notAvailable
	if scan.ExpiryDate != nil {
		expiry = scan.ExpiryDate.Format(expiryDateLayout)
	}
	approved := "Yes"
	if scan.IsApproved != nil && !*scan.IsApproved {
		approved = "No"
	}

	return []string{
		valueOr(scan.MedicineName, notAvailable),
		valueOr(scan.BatchNumber, notAvailable),
		valueOr(scan.Manufacturer, notAvailable),
		scanDate,
		score,
		strings.ToUpper(string(quality.StatusOf(scan))),
		expiry,
		valueOr(scan.Dosage, notAvailable),
		approved,
	}
}

type snapshot struct {
	MedicineName    *string         `json:"medicine_name"`
	BatchNumber     *string         `json:"batch_number"`
	Manufacturer    *string         `json:"manufacturer"`
	QualityScore    *int            `json:"quality_score"`
	ScanDate        *time.Time      `json:"scan_date"`
	ExpiryDate      *string         `json:"expiry_date"`
	Dosage          *string         `json:"dosage"`
	AnalysisDetails json.RawMessage `json:"analysis_details"`
	IsApproved      *bool           `json:"is_approved"`
}

// Snapshot renders a single scan as indented JSON.
func (e *Exporter) Snapshot(scan *entities.MedicineScan) (domain.ExportFile, error) {
	out := snapshot{
		MedicineName:    scan.MedicineName,
		BatchNumber:     scan.BatchNumber,
		Manufacturer:    scan.Manufacturer,
		QualityScore:    scan.QualityScore,
		Dosage:          scan.Dosage,
		AnalysisDetails: rawDetails(scan.AnalysisDetails),
		IsApproved:      scan.IsApproved,
	}
	if !scan.ScanDate.IsZero() {
		scanDate := scan.ScanDate.UTC()
		out.ScanDate = &scanDate
	}
	if scan.ExpiryDate != nil {
		expiry := scan.ExpiryDate.Format(domain.DateLayout)
		out.ExpiryDate = &expiry
	}

	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return domain.ExportFile{}, fmt.Errorf("marshal report snapshot: %w", err)
	}

	return domain.ExportFile{
		Filename: fmt.Sprintf("report-%s-%s.json",
			filenamePart(scan.MedicineName),
			filenamePart(scan.BatchNumber)),
		ContentType: JSONContentType,
		Content:     content,
		Count:       1,
	}, nil
}

func rawDetails(raw datatypes.JSON) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(raw)
}

// filenamePart keeps a value safe inside a quoted Content-Disposition
// filename. Path separators, quotes and control characters become '_'.
func filenamePart(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return '_'
		case strings.ContainsRune(`/\"';:*?<>|`, r):
			return '_'
		}
		return r
	}, *s)
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
