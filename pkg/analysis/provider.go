// Package analysis produces quality scores for submitted medicine scans.
package analysis

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/lavanyassgit/Medicine-AI/entities"
)

const (
	KindSimulated = "simulated"
	KindRemote    = "remote"
)

const IssuePackaging = "Minor packaging inconsistencies detected"

type (
	Provider interface {
		Analyze(ctx context.Context, input Input) (Result, error)
	}

	Input struct {
		MedicineName string
		BatchNumber  string
		Image        *multipart.FileHeader
	}

	Result struct {
		Score  int
		Checks entities.AnalysisDetails
		Issues []string
	}
)

// NewProvider picks an implementation by name. An empty kind selects the
// simulated provider.
func NewProvider(kind, url string) (Provider, error) {
	switch kind {
	case "", KindSimulated:
		return NewSimulatedProvider(nil), nil
	case KindRemote:
		if url == "" {
			return nil, fmt.Errorf("remote analysis provider requires AI_MODEL_URL")
		}
		return NewRemoteProvider(url, nil), nil
	default:
		return nil, fmt.Errorf("unknown analysis provider %q", kind)
	}
}
