package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StorageTimeout acota cada petición con el timeout de adquisición del pool.
// Con el pool agotado, el acquire espera hasta este deadline y la petición
// falla como transitorio (503) en vez de quedar bloqueada indefinidamente.
// Los handlers leen el contexto con c.UserContext().
func StorageTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
