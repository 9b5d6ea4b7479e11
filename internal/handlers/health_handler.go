package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/database"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/dto"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
)

type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler takes the optional log database; nil leaves db out of the report.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:        "ok",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		ResourceCount: len(models.Resources),
	}
	if h.db != nil {
		resp.DB = "ok"
		if err := database.Ping(h.db); err != nil {
			resp.DB = "unhealthy: " + err.Error()
		}
	}
	return c.JSON(resp)
}
