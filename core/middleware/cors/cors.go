package cors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fibercors "github.com/gofiber/fiber/v2/middleware/cors"
)

// AllowedMethods are the methods browsers may use cross-origin.
var AllowedMethods = []string{
	fiber.MethodGet,
	fiber.MethodPost,
	fiber.MethodPut,
	fiber.MethodDelete,
	fiber.MethodOptions,
}

// New returns a CORS middleware for all paths, including the API documentation.
// origins is a comma separated list, "*" allows every origin. Credentials are never allowed.
func New(origins string) fiber.Handler {
	if strings.TrimSpace(origins) == "" {
		origins = "*"
	}
	return fibercors.New(fibercors.Config{
		AllowOrigins:     origins,
		AllowMethods:     strings.Join(AllowedMethods, ","),
		AllowCredentials: false,
	})
}
