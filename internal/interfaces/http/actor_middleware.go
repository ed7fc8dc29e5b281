package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderUserID identifica al actor (created_by, approved_by, user_id del libro).
const HeaderUserID = "X-User-ID"

// LocalUserID clave de c.Locals para el actor.
const LocalUserID = "user_id"

// ActorMiddleware copia X-User-ID a c.Locals. No autentica: los casos de uso rechazan
// las escrituras que requieren actor cuando llega vacío.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalUserID, strings.TrimSpace(c.Get(HeaderUserID)))
		return c.Next()
	}
}

// GetUserID devuelve el actor del contexto (después de ActorMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
