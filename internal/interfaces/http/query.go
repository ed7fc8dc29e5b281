package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Planta-api/internal/domain"
)

// queryTime lee un instante RFC 3339 (o fecha YYYY-MM-DD) del query string; ausente -> nil.
func queryTime(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(name, "debe ser RFC 3339 o YYYY-MM-DD")
}

// queryWindow ventana obligatoria from/to.
func queryWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := queryTime(c, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from == nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("from", "es obligatorio")
	}
	if to == nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("to", "es obligatorio")
	}
	return *from, *to, nil
}
