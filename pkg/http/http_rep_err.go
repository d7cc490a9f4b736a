package http

import (
	"github.com/go-pathway/pathway/pkg/validate"
	"github.com/gofiber/fiber/v2"
)

type ResponseErr struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Details []validate.FieldError `json:"details,omitempty"`
	Path    string               `json:"path,omitempty"`
}

// WithRepErr replies with the code's own message.
func WithRepErr(c *fiber.Ctx, code *Code, path string) error {
	return c.Status(code.Status).JSON(ResponseErr{
		Code:    code.Code,
		Message: code.Msg,
		Path:    path,
	})
}

// WithRepErrMsg replies with a custom message under the given code.
func WithRepErrMsg(c *fiber.Ctx, code *Code, msg string, path string) error {
	return c.Status(code.Status).JSON(ResponseErr{
		Code:    code.Code,
		Message: msg,
		Path:    path,
	})
}

// WithRepErrDetails replies a validation failure with per-field details.
func WithRepErrDetails(c *fiber.Ctx, code *Code, details []validate.FieldError, path string) error {
	return c.Status(code.Status).JSON(ResponseErr{
		Code:    code.Code,
		Message: code.Msg,
		Details: details,
		Path:    path,
	})
}
