package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/dto"
)

// ErrorHandler is the fiber error handler: it keeps *fiber.Error codes and
// hides details of server errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		// ctx strings point into pooled buffers and log sinks may keep records past the request
		requestID, _ := c.Locals("requestid").(string)
		slog.Error("unhandled server error",
			"request_id", utils.CopyString(requestID),
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.Path()),
			"resource", utils.CopyString(c.Params("resource")),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
