package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"gorm.io/datatypes"
)

type CheckKind string

const (
	CheckPackaging          CheckKind = "packaging"
	CheckLabeling           CheckKind = "labeling"
	CheckPhysicalAttributes CheckKind = "physical_attributes"
	CheckAuthentication     CheckKind = "authentication"
)

var CheckKinds = []CheckKind{
	CheckPackaging,
	CheckLabeling,
	CheckPhysicalAttributes,
	CheckAuthentication,
}

var ErrInvalidAnalysisDetails = errors.New("invalid analysis details")

type CheckResult struct {
	Status  string `json:"status"`
	Score   int    `json:"score"`
	Details string `json:"details"`
}

// AnalysisDetails maps each named sub-check to its outcome.
type AnalysisDetails map[CheckKind]CheckResult

func (d AnalysisDetails) Validate() error {
	for kind, check := range d {
		if !slices.Contains(CheckKinds, kind) {
			return fmt.Errorf("%w: unknown check %q", ErrInvalidAnalysisDetails, kind)
		}
		switch check.Status {
		case "passed", "warning", "failed":
		default:
			return fmt.Errorf("%w: check %q has status %q", ErrInvalidAnalysisDetails, kind, check.Status)
		}
		if check.Score < 0 || check.Score > 100 {
			return fmt.Errorf("%w: check %q has score %d", ErrInvalidAnalysisDetails, kind, check.Score)
		}
	}
	return nil
}

// Encode validates d and converts it to its stored form.
func (d AnalysisDetails) Encode() (datatypes.JSON, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeAnalysisDetails parses a stored column, rejecting shapes outside the
// fixed set of check kinds.
func DecodeAnalysisDetails(raw datatypes.JSON) (AnalysisDetails, error) {
	details := AnalysisDetails{}
	if len(raw) == 0 || string(raw) == "null" {
		return details, nil
	}
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnalysisDetails, err)
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return details, nil
}
