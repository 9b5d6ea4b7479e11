package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/dto"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
)

// DataHandler exposes the data provider operations as JSON.
type DataHandler struct {
	provider services.DataProvider
}

func NewDataHandler(provider services.DataProvider) *DataHandler {
	return &DataHandler{provider: provider}
}

type bulkRequest struct {
	IDs  []string      `json:"ids"`
	Data models.Record `json:"data"`
}

func (h *DataHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.provider.GetList(c.Params("resource")))
}

func (h *DataHandler) GetOne(c *fiber.Ctx) error {
	return c.JSON(h.provider.GetOne(c.Params("resource"), dto.GetOneParams{ID: c.Params("id")}))
}

func (h *DataHandler) GetMany(c *fiber.Ctx) error {
	return c.JSON(h.provider.GetMany(c.Params("resource"), dto.GetManyParams{IDs: splitIDs(c.Query("ids"))}))
}

func (h *DataHandler) GetManyReference(c *fiber.Ctx) error {
	return c.JSON(h.provider.GetManyReference(c.Params("resource"), dto.GetManyReferenceParams{
		Target: c.Query("target"),
		ID:     c.Query("id"),
	}))
}

func (h *DataHandler) Create(c *fiber.Ctx) error {
	var data models.Record
	if err := decodeBody(c, &data); err != nil {
		return invalidBody(c)
	}
	return c.Status(fiber.StatusCreated).JSON(h.provider.Create(c.Params("resource"), dto.CreateParams{Data: data}))
}

func (h *DataHandler) Update(c *fiber.Ctx) error {
	var data models.Record
	if err := decodeBody(c, &data); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.provider.Update(c.Params("resource"), dto.UpdateParams{ID: c.Params("id"), Data: data}))
}

func (h *DataHandler) UpdateMany(c *fiber.Ctx) error {
	var req bulkRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.provider.UpdateMany(c.Params("resource"), dto.UpdateManyParams{IDs: req.IDs, Data: req.Data}))
}

func (h *DataHandler) Delete(c *fiber.Ctx) error {
	return c.JSON(h.provider.Delete(c.Params("resource"), dto.DeleteParams{ID: c.Params("id")}))
}

// DeleteMany takes ids from the JSON body, falling back to the ids query.
func (h *DataHandler) DeleteMany(c *fiber.Ctx) error {
	var req bulkRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c)
	}
	if req.IDs == nil {
		req.IDs = splitIDs(c.Query("ids"))
	}
	return c.JSON(h.provider.DeleteMany(c.Params("resource"), dto.DeleteManyParams{IDs: req.IDs}))
}

// decodeBody treats an empty body as an empty value. Content type is not
// checked, so plain fetch calls without headers still work.
func decodeBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func splitIDs(raw string) []string {
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
