package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/application/workflow"
	"github.com/jhoicas/AssetVerse-api/internal/observability"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// AssetRequestHandler maneja el ciclo de vida de las solicitudes de assets.
type AssetRequestHandler struct {
	uc  *workflow.RequestUseCase
	log *logger.Logger
}

// NewAssetRequestHandler construye el handler.
func NewAssetRequestHandler(uc *workflow.RequestUseCase, log *logger.Logger) *AssetRequestHandler {
	return &AssetRequestHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar solicitudes (más recientes primero)
// @Tags         asset_requests
// @Produce      json
// @Success      200  {array}   dto.AssetRequestResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /asset_requests [get]
func (h *AssetRequestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err, errorText{Internal: "Failed to fetch requests"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear solicitud
// @Description  Queda en estado pending con el nombre actual del asset.
// @Tags         asset_requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequestRequest  true  "Solicitud"
// @Success      201   {object}  dto.InsertResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /asset_requests [post]
func (h *AssetRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid asset ID", Internal: "Failed to create request"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Description  Descuenta el stock y marca la solicitud como approved en una sola transacción.
// @Tags         asset_requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /asset_requests/{id}/approve [put]
func (h *AssetRequestHandler) Approve(c *fiber.Ctx) error {
	err := h.uc.Approve(c.Context(), c.Params("id"))
	observability.RequestTransitions.WithLabelValues("approve", observability.Outcome(err)).Inc()
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid request ID", Internal: "Approval failed"})
	}
	return c.JSON(dto.MessageResponse{Message: "Request approved"})
}

// Reject godoc
// @Summary      Rechazar solicitud
// @Tags         asset_requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /asset_requests/{id}/reject [put]
func (h *AssetRequestHandler) Reject(c *fiber.Ctx) error {
	err := h.uc.Reject(c.Context(), c.Params("id"))
	observability.RequestTransitions.WithLabelValues("reject", observability.Outcome(err)).Inc()
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid request ID", Internal: "Reject failed"})
	}
	return c.JSON(dto.MessageResponse{Message: "Request rejected"})
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Description  No devuelve stock al asset.
// @Tags         asset_requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestDeleteResponse
// @Router       /asset_requests/{id} [delete]
func (h *AssetRequestHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, errorText{InvalidID: "Invalid request ID", Internal: "Delete failed"})
	}
	return c.JSON(out)
}
