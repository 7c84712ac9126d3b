package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cwa-weather/pkg/logger"
)

const panicLoggedKey = "httpserver.panic_logged"

func InitFiberServer(appName string, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      appName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler(l),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			// Logged here, where the stack still holds the panicking frames.
			c.Locals(panicLoggedKey, true)
			l.Error(fmt.Errorf("panic: %v", e), map[string]any{
				"method": c.Method(),
				"path":   c.Path(),
			})
		},
	}))
	s.Use(cors.New())

	return s
}

// ErrorHandler writes every error that escapes a handler as a JSON body.
// Unmatched routes, including a known path with the wrong method, become
// 404 {"error":"not found"}; anything that is not a *fiber.Error is reported
// as a 500 and logged with its stack unless the recover middleware already
// logged it.
func ErrorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound, fe.Code == fiber.StatusMethodNotAllowed:
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
			case fe.Code < fiber.StatusInternalServerError:
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
		}

		if logged, _ := c.Locals(panicLoggedKey).(bool); !logged {
			l.Error(err, map[string]any{
				"method": c.Method(),
				"path":   c.Path(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "server error",
			"message": err.Error(),
		})
	}
}
