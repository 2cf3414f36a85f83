package quality

import (
	"time"

	"github.com/google/uuid"
	"github.com/lavanyassgit/Medicine-AI/entities"
)

type Summary struct {
	Total        int
	PassedCount  int
	WarningCount int
	FailedCount  int
}

func Summarize(scans []*entities.MedicineScan) Summary {
	summary := Summary{Total: len(scans)}
	for _, scan := range scans {
		switch StatusOf(scan) {
		case StatusPassed:
			summary.PassedCount++
		case StatusWarning:
			summary.WarningCount++
		default:
			summary.FailedCount++
		}
	}
	return summary
}

// Rate returns count as a whole percentage of total, rounding halves up.
// An empty total yields 0.
func Rate(count, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*count + total) / (2 * total)
}

// TrendPoint is one chart sample. Exactly one of Passed, Warning and Failed
// carries the score; the others stay nil so a line renderer shows a gap.
type TrendPoint struct {
	ID       uuid.UUID
	ScanDate time.Time
	Passed   *int
	Warning  *int
	Failed   *int
	Total    *int
}

// TrendSeries takes the maxPoints most recent scans (scans must be ordered
// newest first) and returns them oldest first. maxPoints <= 0 keeps every scan.
func TrendSeries(scans []*entities.MedicineScan, maxPoints int) []TrendPoint {
	n := len(scans)
	if maxPoints > 0 && maxPoints < n {
		n = maxPoints
	}

	points := make([]TrendPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		scan := scans[i]
		point := TrendPoint{
			ID:       scan.ID,
			ScanDate: scan.ScanDate,
			Total:    copyScore(scan.QualityScore),
		}
		if scan.QualityScore != nil {
			switch StatusOf(scan) {
			case StatusPassed:
				point.Passed = copyScore(scan.QualityScore)
			case StatusWarning:
				point.Warning = copyScore(scan.QualityScore)
			case StatusFailed:
				point.Failed = copyScore(scan.QualityScore)
			}
		}
		points = append(points, point)
	}
	return points
}

func copyScore(score *int) *int {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}
