package httpapi

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-station/internal/display"
	"github.com/i474232898/weather-station/internal/store"
)

var validate = validator.New()

// DisplayState exposes the current display state, or false while the display
// is not ready.
type DisplayState interface {
	State() (display.State, bool)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, st *store.MemoryStore, disp DisplayState) {
	v1 := app.Group("/api/v1")

	v1.Get("/readings", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"readings": st.Entries(),
		})
	})

	v1.Get("/readings/:name", func(c *fiber.Ctx) error {
		q, err := parseReadingQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entry, err := st.Lookup(q.Name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no value for requested reading")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read store")
		}
		return c.JSON(entry)
	})

	v1.Get("/display", func(c *fiber.Ctx) error {
		state, ok := disp.State()
		if !ok {
			return fiber.NewError(fiber.StatusServiceUnavailable, "display is not ready")
		}
		return c.JSON(state)
	})
}

// readingQuery identifies a reading by name.
type readingQuery struct {
	Name string `validate:"required,max=64"`
}

func parseReadingQuery(c *fiber.Ctx) (readingQuery, error) {
	var q readingQuery

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return q, err
	}
	q.Name = name

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
