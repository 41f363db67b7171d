package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/quiz"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeUnknownTopic       = "UNKNOWN_TOPIC"
	CodeInvalidAnswerIndex = "INVALID_ANSWER_INDEX"
	CodeHTTP               = "HTTP_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorHandler is the centralized error handler for the quiz routes.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		switch {
		case errors.Is(err, quiz.ErrUnknownTopic):
			return reject(c, log, http.StatusNotFound, CodeUnknownTopic, err)
		case errors.Is(err, quiz.ErrInvalidAnswerIndex):
			return reject(c, log, http.StatusBadRequest, CodeInvalidAnswerIndex, err)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    CodeHTTP,
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternal,
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

func reject(c *fiber.Ctx, log *zap.Logger, status int, code string, err error) error {
	log.Info("Quiz event rejected",
		zap.String("code", code),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: err.Error(),
		Status:  status,
	})
}
