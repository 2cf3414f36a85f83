package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"github.com/lavanyassgit/Medicine-AI/internal/utils/storage"
)

// statusFor maps service errors to HTTP status codes. Unknown errors are
// store or upstream failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrScanNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess),
		errors.Is(err, domain.ErrCatalogLocked):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNoDataToExport),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidStatusFilter),
		errors.Is(err, domain.ErrInvalidAccessCode),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAnalysisFailed),
		errors.Is(err, domain.ErrInvalidQualityScore),
		errors.Is(err, entities.ErrInvalidAnalysisDetails):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrAssistantClosed):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
