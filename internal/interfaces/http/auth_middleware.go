package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopping-api/internal/domain"
	"github.com/jhoicas/shopping-api/pkg/jwt"
)

// LocalUserID key del UserID en c.Locals tras el middleware de auth.
const LocalUserID = "user_id"

// AuthMiddleware valida el Bearer Token JWT y deja el UserID en c.Locals.
// Hoy ninguna ruta de productos lo monta (la verificación en servidor es un
// no-goal del core actual); el componente queda listo para cuando la
// autenticación se active como pieza propia. Las fallas suben como
// domain.ErrInvalidToken para que el clasificador responda 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fmt.Errorf("authorization header ausente: %w", domain.ErrInvalidToken)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fmt.Errorf("formato esperado Bearer <token>: %w", domain.ErrInvalidToken)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fmt.Errorf("token vacío: %w", domain.ErrInvalidToken)
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fmt.Errorf("parse token: %w", domain.ErrInvalidToken)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
