package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/views"
)

type PageHandler struct {
	provider services.DataProvider
}

func NewPageHandler(provider services.DataProvider) *PageHandler {
	return &PageHandler{provider: provider}
}

func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, views.Page("Dashboard", views.NavDashboard, views.Dashboard(views.StaticDashboardStats)))
}

// List renders the table page for the resource named by the :resource param.
func (h *PageHandler) List(c *fiber.Ctx) error {
	name := c.Params("resource")
	r, ok := models.ParseResource(name)
	if !ok {
		return render(c, fiber.StatusNotFound, views.Page("Not Found", "", views.NotFound(name)))
	}

	result := h.provider.GetList(r.String())
	return render(c, fiber.StatusOK, views.Page(r.Label(), r.String(), views.ResourceList(r, result.Data, result.Total)))
}
