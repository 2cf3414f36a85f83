package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/internal/api/presenters"
	"github.com/lavanyassgit/Medicine-AI/pkg/assistant"
)

type (
	AssistantHandler interface {
		SendMessage(c *fiber.Ctx) error
		GetTranscript(c *fiber.Ctx) error
		EndSession(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

// SendMessage accepts the message and returns before the reply exists.
func (h *assistantHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	msg, err := h.assistantService.Send(userID, req.Text)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, msg, fiber.StatusAccepted, domain.MessageSuccessSendMessage)
}

func (h *assistantHandler) GetTranscript(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	return presenters.SuccessResponse(c, h.assistantService.Transcript(userID), fiber.StatusOK, domain.MessageSuccessGetTranscript)
}

func (h *assistantHandler) EndSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	h.assistantService.EndSession(userID)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEndSession)
}
