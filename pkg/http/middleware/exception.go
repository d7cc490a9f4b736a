package middleware

import (
	"runtime/debug"

	"github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// ExceptionMiddleware recovers from handler panics and replies 500 without
// leaking the stack to the client.
func ExceptionMiddleware(c *fiber.Ctx) error {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("panic: %v\n%s", err, debug.Stack())
			_ = http.WithRepErr(c, http.InternalError, c.Path())
		}
	}()

	return c.Next()
}
