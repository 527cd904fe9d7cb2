package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/application/usecase"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// AssetHandler maneja las peticiones HTTP del catálogo de assets.
type AssetHandler struct {
	uc  *usecase.AssetUseCase
	log *logger.Logger
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase, log *logger.Logger) *AssetHandler {
	return &AssetHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar assets
// @Tags         assets
// @Produce      json
// @Success      200  {array}   dto.AssetResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err, errorText{Internal: "Failed to fetch assets"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener asset por ID
// @Tags         assets
// @Produce      json
// @Param        id   path  string  true  "ID del asset"
// @Success      200  {object}  dto.AssetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid asset ID", Internal: "Failed to fetch asset"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear asset
// @Description  El nombre se guarda en minúsculas y sin espacios en los extremos.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del asset"
// @Success      201   {object}  dto.InsertResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err, errorText{Internal: "Failed to create asset", Detail: true})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar asset
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del asset"
// @Param        body  body  dto.UpdateAssetRequest  true  "name, quantity y type obligatorios"
// @Success      200   {object}  dto.UpdateResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid asset ID", Internal: "Failed to update asset", Detail: true})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar asset
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del asset"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid asset ID", Internal: "Delete failed"})
	}
	return c.JSON(dto.DeleteResponse{Message: "Asset deleted", Result: *out})
}
