package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/internal/api/presenters"
	"github.com/lavanyassgit/Medicine-AI/pkg/medicine"
)

type (
	MedicineHandler interface {
		SubmitScan(c *fiber.Ctx) error
		GetScans(c *fiber.Ctx) error
		GetScanDetails(c *fiber.Ctx) error
		MarkReviewed(c *fiber.Ctx) error
		DeleteScan(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		GetReports(c *fiber.Ctx) error
		ExportReports(c *fiber.Ctx) error
		ExportSnapshot(c *fiber.Ctx) error
	}

	medicineHandler struct {
		medicineService medicine.MedicineService
		validator       *validator.Validate
	}
)

func NewMedicineHandler(medicineService medicine.MedicineService, validator *validator.Validate) MedicineHandler {
	return &medicineHandler{
		medicineService: medicineService,
		validator:       validator,
	}
}

func (h *medicineHandler) SubmitScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitScan, err)
	}

	res, err := h.medicineService.SubmitScan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSubmitScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitScan)
}

func (h *medicineHandler) GetScans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DateRangeQuery)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScans, err)
	}

	scans, err := h.medicineService.GetScans(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetScans, err)
	}

	return presenters.SuccessResponse(c, scans, fiber.StatusOK, domain.MessageSuccessGetScans)
}

func (h *medicineHandler) GetScanDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	scan, err := h.medicineService.GetScanByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetScan, err)
	}

	return presenters.SuccessResponse(c, scan, fiber.StatusOK, domain.MessageSuccessGetScan)
}

func (h *medicineHandler) MarkReviewed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	scan, err := h.medicineService.MarkReviewed(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedMarkReviewed, err)
	}

	return presenters.SuccessResponse(c, scan, fiber.StatusOK, domain.MessageSuccessMarkReviewed)
}

func (h *medicineHandler) DeleteScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.medicineService.DeleteScan(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteScan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteScan)
}

func (h *medicineHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DateRangeQuery)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboard, err)
	}

	dashboard, err := h.medicineService.GetDashboard(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, dashboard, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *medicineHandler) GetReports(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req, err := h.reportQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	reports, err := h.medicineService.GetReports(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, reports, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *medicineHandler) ExportReports(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req, err := h.reportQuery(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportReports, err)
	}

	file, err := h.medicineService.ExportReports(c.Context(), req, userID)
	if err != nil {
		message := domain.MessageFailedExportReports
		if errors.Is(err, domain.ErrNoDataToExport) {
			message = domain.MessageNoDataToExport
		}
		return presenters.ErrorResponse(c, statusFor(err), message, err)
	}

	return sendFile(c, file)
}

func (h *medicineHandler) ExportSnapshot(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := h.medicineService.ExportSnapshot(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDownloadReport, err)
	}

	return sendFile(c, file)
}

func (h *medicineHandler) reportQuery(c *fiber.Ctx) (domain.ReportQuery, error) {
	req := domain.ReportQuery{}
	if err := c.QueryParser(&req); err != nil {
		return req, err
	}
	if err := h.validator.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

func sendFile(c *fiber.Ctx, file domain.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Status(fiber.StatusOK).Send(file.Content)
}
