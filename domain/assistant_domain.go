package domain

import (
	"errors"
)

var (
	MessageSuccessSendMessage   = "message received"
	MessageSuccessGetTranscript = "transcript retrieved successfully"
	MessageSuccessEndSession    = "assistant session closed"

	MessageFailedSendMessage = "failed to send message"

	ErrEmptyMessage    = errors.New("message must not be empty")
	ErrAssistantClosed = errors.New("assistant is shutting down")
)

type (
	SendMessageRequest struct {
		Text string `json:"text" validate:"required"`
	}
)
