package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// Every endpoint wraps its payload in a {success, data, message/error}
// envelope so mobile clients can branch on a single flag.

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	resp := fiber.Map{
		"success": true,
	}
	if data != nil {
		resp["data"] = data
	}
	if message != "" {
		resp["message"] = message
	}
	return c.Status(statusCode).JSON(resp)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	resp := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		resp["message"] = err.Error()
	}
	return c.Status(statusCode).JSON(resp)
}

// ErrorWithSuggestion adds a hint for the user to rephrase their input,
// used by the calculate endpoints when extraction produced zeros.
func ErrorWithSuggestion(c *fiber.Ctx, statusCode int, errorText, message, suggestion string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success":    false,
		"error":      errorText,
		"message":    message,
		"suggestion": suggestion,
	})
}
