package quality

import (
	"strings"

	"github.com/lavanyassgit/Medicine-AI/entities"
)

// Matches reports whether query is a case-insensitive substring of the
// medicine name, batch number or manufacturer. Absent fields never match and
// an empty query matches every scan.
func Matches(scan *entities.MedicineScan, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []*string{scan.MedicineName, scan.BatchNumber, scan.Manufacturer} {
		if field != nil && strings.Contains(strings.ToLower(*field), q) {
			return true
		}
	}
	return false
}

// Filter keeps the scans matching query whose status equals status. An empty
// status keeps every status. Order is preserved.
func Filter(scans []*entities.MedicineScan, query string, status Status) []*entities.MedicineScan {
	filtered := make([]*entities.MedicineScan, 0, len(scans))
	for _, scan := range scans {
		if !Matches(scan, query) {
			continue
		}
		if status != "" && StatusOf(scan) != status {
			continue
		}
		filtered = append(filtered, scan)
	}
	return filtered
}
