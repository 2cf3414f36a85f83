package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(v int) func(int) int {
	return func(int) int { return v }
}

func TestSimulatedScoreRange(t *testing.T) {
	low, err := NewSimulatedProvider(fixed(0)).Analyze(context.Background(), Input{})
	require.NoError(t, err)
	assert.Equal(t, 70, low.Score)

	high, err := NewSimulatedProvider(fixed(29)).Analyze(context.Background(), Input{})
	require.NoError(t, err)
	assert.Equal(t, 99, high.Score)

	for range 50 {
		res, err := NewSimulatedProvider(nil).Analyze(context.Background(), Input{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 70)
		assert.Less(t, res.Score, 100)
		assert.NoError(t, res.Checks.Validate())
	}
}

func TestSimulatedChecks(t *testing.T) {
	tests := []struct {
		score  int
		passed []entities.CheckKind
		issues []string
	}{
		{70, nil, []string{IssuePackaging}},
		{76, []entities.CheckKind{entities.CheckPackaging, entities.CheckAuthentication}, []string{IssuePackaging}},
		{81, []entities.CheckKind{entities.CheckPackaging, entities.CheckLabeling, entities.CheckAuthentication}, []string{}},
		{90, entities.CheckKinds, []string{}},
	}
	for _, tt := range tests {
		res, err := NewSimulatedProvider(fixed(tt.score - 70)).Analyze(context.Background(), Input{})
		require.NoError(t, err)
		assert.Equal(t, tt.issues, res.Issues, "score %d", tt.score)
		require.Len(t, res.Checks, 4)
		for _, kind := range entities.CheckKinds {
			want := "warning"
			for _, p := range tt.passed {
				if p == kind {
					want = "passed"
				}
			}
			assert.Equal(t, want, res.Checks[kind].Status, "score %d check %s", tt.score, kind)
		}
	}
}

func TestSimulatedRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulatedProvider(nil).Analyze(ctx, Input{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoteProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Paracetamol", r.FormValue("medicine_name"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"score": 88,
			"checks": map[string]any{
				"packaging": map[string]any{"status": "passed", "score": 90, "details": "ok"},
			},
		})
	}))
	defer srv.Close()

	res, err := NewRemoteProvider(srv.URL, srv.Client()).Analyze(context.Background(), Input{MedicineName: "Paracetamol"})
	require.NoError(t, err)
	assert.Equal(t, 88, res.Score)
	assert.Equal(t, "passed", res.Checks[entities.CheckPackaging].Status)
	assert.Empty(t, res.Issues)
}

func TestRemoteProviderRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `boom`, domain.ErrAnalysisFailed},
		{"not json", http.StatusOK, `<html>`, domain.ErrAnalysisFailed},
		{"missing score", http.StatusOK, `{"checks":{}}`, domain.ErrInvalidQualityScore},
		{"score out of range", http.StatusOK, `{"score":140}`, domain.ErrInvalidQualityScore},
		{"unknown check", http.StatusOK, `{"score":90,"checks":{"color":{"status":"passed","score":1}}}`, entities.ErrInvalidAnalysisDetails},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewRemoteProvider(srv.URL, srv.Client()).Analyze(context.Background(), Input{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider("", "")
	require.NoError(t, err)
	assert.IsType(t, &SimulatedProvider{}, p)

	p, err = NewProvider(KindRemote, "http://model:5000/analyze")
	require.NoError(t, err)
	assert.IsType(t, &RemoteProvider{}, p)

	_, err = NewProvider(KindRemote, "")
	assert.Error(t, err)

	_, err = NewProvider("gemini", "")
	assert.Error(t, err)
}
