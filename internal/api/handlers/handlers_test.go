package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/internal/api/presenters"
	"github.com/lavanyassgit/Medicine-AI/pkg/assistant"
	"github.com/lavanyassgit/Medicine-AI/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "6f1c2d3e-4a5b-4c6d-8e7f-901234567890"

type fakeMedicineService struct {
	submitted *domain.SubmitScanRequest
	reports   domain.ReportQuery
	scanErr   error
	exportErr error
}

func (f *fakeMedicineService) SubmitScan(_ context.Context, req domain.SubmitScanRequest, _ string) (domain.SubmitScanResponse, error) {
	f.submitted = &req
	return domain.SubmitScanResponse{Scan: domain.ScanResponse{ID: "scan-1", Status: "passed"}, Issues: []string{}}, nil
}

func (f *fakeMedicineService) GetScans(context.Context, domain.DateRangeQuery, string) ([]domain.ScanResponse, error) {
	return []domain.ScanResponse{}, nil
}

func (f *fakeMedicineService) GetScanByID(context.Context, string, string) (domain.ScanResponse, error) {
	return domain.ScanResponse{}, f.scanErr
}

func (f *fakeMedicineService) MarkReviewed(context.Context, string, string) (domain.ScanResponse, error) {
	return domain.ScanResponse{}, f.scanErr
}

func (f *fakeMedicineService) DeleteScan(context.Context, string, string) error {
	return f.scanErr
}

func (f *fakeMedicineService) GetDashboard(context.Context, domain.DateRangeQuery, string) (domain.DashboardResponse, error) {
	return domain.DashboardResponse{PassRate: 100}, nil
}

func (f *fakeMedicineService) GetReports(_ context.Context, req domain.ReportQuery, _ string) ([]domain.ScanResponse, error) {
	f.reports = req
	return []domain.ScanResponse{}, nil
}

func (f *fakeMedicineService) ExportReports(context.Context, domain.ReportQuery, string) (domain.ExportFile, error) {
	if f.exportErr != nil {
		return domain.ExportFile{}, f.exportErr
	}
	return domain.ExportFile{
		Filename:    "quality-reports-2024-03-10.csv",
		ContentType: "text/csv;charset=utf-8",
		Content:     []byte("Medicine Name\n\"Paracetamol\""),
		Count:       1,
	}, nil
}

func (f *fakeMedicineService) ExportSnapshot(context.Context, string, string) (domain.ExportFile, error) {
	return domain.ExportFile{Filename: "report-a-b.json", ContentType: "application/json", Content: []byte("{}")}, f.scanErr
}

type fakeAssistant struct {
	sent   []string
	ended  bool
	closed bool
}

func (f *fakeAssistant) Send(_ string, text string) (assistant.Message, error) {
	if strings.TrimSpace(text) == "" {
		return assistant.Message{}, domain.ErrEmptyMessage
	}
	if f.closed {
		return assistant.Message{}, domain.ErrAssistantClosed
	}
	f.sent = append(f.sent, text)
	return assistant.Message{ID: "m1", Text: text, Sender: assistant.SenderUser, Timestamp: time.Now()}, nil
}

func (f *fakeAssistant) Transcript(string) []assistant.Message {
	return []assistant.Message{{Text: assistant.GreetingText, Sender: assistant.SenderBot}}
}

func (f *fakeAssistant) EndSession(string) { f.ended = true }

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUser)
		c.Locals("role", domain.RoleUser)
		return c.Next()
	})
	return app
}

func decode(t *testing.T, resp *http.Response) presenters.Response {
	t.Helper()
	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func medicineApp(svc *fakeMedicineService) *fiber.App {
	app := newTestApp()
	h := NewMedicineHandler(svc, validator.New())
	app.Post("/medicines", h.SubmitScan)
	app.Get("/medicines/dashboard", h.GetDashboard)
	app.Get("/medicines/reports", h.GetReports)
	app.Get("/medicines/reports/export", h.ExportReports)
	app.Get("/medicines/:id", h.GetScanDetails)
	app.Get("/medicines/:id/export", h.ExportSnapshot)
	app.Patch("/medicines/:id/review", h.MarkReviewed)
	app.Delete("/medicines/:id", h.DeleteScan)
	return app
}

func TestSubmitScanMultipart(t *testing.T) {
	svc := &fakeMedicineService{}
	app := medicineApp(svc)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("medicine_name", "Paracetamol"))
	require.NoError(t, writer.WriteField("expiry_date", "2026-05-31"))
	part, err := writer.CreateFormFile("image", "strip.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/medicines", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "Paracetamol", svc.submitted.MedicineName)
	require.NotNil(t, svc.submitted.Image)
	assert.Equal(t, "strip.png", svc.submitted.Image.Filename)
}

func TestSubmitScanRejectsBadExpiry(t *testing.T) {
	app := medicineApp(&fakeMedicineService{})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("expiry_date", "31/05/2026"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/medicines", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExportReportsSendsCSV(t *testing.T) {
	app := medicineApp(&fakeMedicineService{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/medicines/reports/export?q=para", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv;charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="quality-reports-2024-03-10.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))
	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Medicine Name\n\"Paracetamol\"", string(content))
}

func TestExportReportsNoData(t *testing.T) {
	app := medicineApp(&fakeMedicineService{exportErr: domain.ErrNoDataToExport})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/medicines/reports/export", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.False(t, body.Status)
	assert.Equal(t, domain.MessageNoDataToExport, body.Message)
}

func TestGetReportsQuery(t *testing.T) {
	svc := &fakeMedicineService{}
	app := medicineApp(svc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/medicines/reports?q=para&status=warning&from=2024-01-01&to=2024-01-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ReportQuery{From: "2024-01-01", To: "2024-01-31", Search: "para", Status: "warning"}, svc.reports)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/medicines/reports?status=pending", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/medicines/reports?from=yesterday", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScanErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		err    error
		method string
		path   string
		want   int
	}{
		{domain.ErrScanNotFound, fiber.MethodGet, "/medicines/x", fiber.StatusNotFound},
		{domain.ErrUnauthorizedAccess, fiber.MethodPatch, "/medicines/x/review", fiber.StatusForbidden},
		{domain.ErrScanNotFound, fiber.MethodDelete, "/medicines/x", fiber.StatusNotFound},
		{domain.ErrUnauthorizedAccess, fiber.MethodGet, "/medicines/x/export", fiber.StatusForbidden},
		{nil, fiber.MethodDelete, "/medicines/x", fiber.StatusOK},
	}
	for _, tt := range tests {
		app := medicineApp(&fakeMedicineService{scanErr: tt.err})
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.StatusCode, "%s %s", tt.method, tt.path)
	}
}

func TestDashboard(t *testing.T) {
	app := medicineApp(&fakeMedicineService{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/medicines/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.True(t, body.Status)
	assert.Equal(t, float64(100), body.Data.(map[string]any)["pass_rate"])
}

func TestAssistantHandler(t *testing.T) {
	fake := &fakeAssistant{}
	app := newTestApp()
	h := NewAssistantHandler(fake, validator.New())
	app.Post("/assistant/messages", h.SendMessage)
	app.Get("/assistant/messages", h.GetTranscript)
	app.Delete("/assistant/session", h.EndSession)

	req := httptest.NewRequest(fiber.MethodPost, "/assistant/messages", strings.NewReader(`{"text":"is paracetamol in stock"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, []string{"is paracetamol in stock"}, fake.sent)

	req = httptest.NewRequest(fiber.MethodPost, "/assistant/messages", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/assistant/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/assistant/session", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, fake.ended)

	fake.closed = true
	req = httptest.NewRequest(fiber.MethodPost, "/assistant/messages", strings.NewReader(`{"text":"help"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestCatalogHandler(t *testing.T) {
	svc := catalog.NewCatalogService(catalog.NewDefault(), catalog.NewAccessGate(time.UTC))
	app := newTestApp()
	h := NewCatalogHandler(svc, validator.New())
	app.Post("/catalog/unlock", h.Unlock)
	app.Get("/catalog/medicines", h.GetMedicines)
	app.Get("/catalog/stock", h.LookupStock)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/catalog/medicines", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	unlock := func(code string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/catalog/unlock", strings.NewReader(`{"code":"`+code+`"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}
	assert.Equal(t, fiber.StatusBadRequest, unlock("12ab"))

	code := svc.GetAccessCode().Code
	wrong := "10000000"
	if code == wrong {
		wrong = "10000001"
	}
	assert.Equal(t, fiber.StatusBadRequest, unlock(wrong))
	assert.Equal(t, fiber.StatusOK, unlock(code))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/catalog/medicines?q=pharma", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/catalog/stock?q=omeprazole", nil))
	require.NoError(t, err)
	body := decode(t, resp)
	data := body.Data.(map[string]any)
	assert.Equal(t, true, data["found"])
	assert.Equal(t, false, data["in_stock"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/catalog/stock", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
