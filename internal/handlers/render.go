package handlers

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

// render buffers the component so a failed render never leaves a partial page.
func render(c *fiber.Ctx, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.UserContext(), &buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return c.Type("html", "utf-8").Status(status).Send(buf.Bytes())
}
