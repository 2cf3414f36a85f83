// Package quality turns raw scan records into user-facing statuses and rolls
// collections of them up into dashboard statistics.
package quality

import (
	"github.com/lavanyassgit/Medicine-AI/entities"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

const (
	passThreshold    = 80
	warningThreshold = 60
)

// Classify derives the status of a scan. A missing score wins over an explicit
// rejection, so Classify(nil, false) is warning, not failed.
func Classify(score *int, approved *bool) Status {
	if score == nil {
		return StatusWarning
	}
	if approved != nil && !*approved {
		return StatusFailed
	}
	if *score >= passThreshold {
		return StatusPassed
	}
	if *score >= warningThreshold {
		return StatusWarning
	}
	return StatusFailed
}

func StatusOf(scan *entities.MedicineScan) Status {
	return Classify(scan.QualityScore, scan.IsApproved)
}

// ParseStatus accepts passed, warning or failed.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPassed, StatusWarning, StatusFailed:
		return Status(s), true
	}
	return "", false
}
