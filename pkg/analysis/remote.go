package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
)

// RemoteProvider posts the scan as multipart form data to an inference
// service and expects {"score", "checks", "issues"} back.
type RemoteProvider struct {
	url    string
	client *http.Client
}

func NewRemoteProvider(url string, client *http.Client) *RemoteProvider {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &RemoteProvider{url: url, client: client}
}

type remoteResponse struct {
	Score  *int                     `json:"score"`
	Checks entities.AnalysisDetails `json:"checks"`
	Issues []string                 `json:"issues"`
}

func (p *RemoteProvider) Analyze(ctx context.Context, input Input) (Result, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("medicine_name", input.MedicineName)
	_ = writer.WriteField("batch_number", input.BatchNumber)
	if input.Image != nil {
		if err := writeImage(writer, input.Image); err != nil {
			return Result{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("%w: %s - %s", domain.ErrAnalysisFailed, resp.Status, string(bodyBytes))
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}
	if out.Score == nil || *out.Score < 0 || *out.Score > 100 {
		return Result{}, domain.ErrInvalidQualityScore
	}
	if err := out.Checks.Validate(); err != nil {
		return Result{}, err
	}
	if out.Issues == nil {
		out.Issues = []string{}
	}
	return Result{Score: *out.Score, Checks: out.Checks, Issues: out.Issues}, nil
}

func writeImage(writer *multipart.Writer, image *multipart.FileHeader) error {
	file, err := image.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}
