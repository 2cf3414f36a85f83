package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/internal/api/presenters"
	"github.com/lavanyassgit/Medicine-AI/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetAccessCode(c *fiber.Ctx) error
		Unlock(c *fiber.Ctx) error
		Lock(c *fiber.Ctx) error
		GetMedicines(c *fiber.Ctx) error
		LookupStock(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetAccessCode(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.catalogService.GetAccessCode(), fiber.StatusOK, domain.MessageSuccessGetAccessCode)
}

func (h *catalogHandler) Unlock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UnlockCatalogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnlock, err)
	}

	if err := h.catalogService.Unlock(userID, *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUnlock, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnlock)
}

func (h *catalogHandler) Lock(c *fiber.Ctx) error {
	h.catalogService.Lock(c.Locals("user_id").(string))
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageCatalogLocked)
}

func (h *catalogHandler) GetMedicines(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	medicines, err := h.catalogService.GetMedicines(userID, c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageCatalogLocked, err)
	}

	return presenters.SuccessResponse(c, medicines, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) LookupStock(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStockLookup, domain.ErrEmptyMessage)
	}
	return presenters.SuccessResponse(c, h.catalogService.LookupStock(query), fiber.StatusOK, domain.MessageSuccessStockLookup)
}
