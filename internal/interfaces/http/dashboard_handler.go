package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// DashboardHandler maneja los endpoints de gráficos del dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Pie godoc
// @Summary      Assets por tipo
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.GroupCountDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/pie [get]
func (h *DashboardHandler) Pie(c *fiber.Ctx) error {
	out, err := h.uc.AssetTypeDistribution(c.Context())
	if err != nil {
		return respondError(c, h.log, err, errorText{Internal: "Server Error"})
	}
	return c.JSON(out)
}

// Bar godoc
// @Summary      Top 5 assets más solicitados
// @Description  Cuenta todas las solicitudes por assetName sin importar su estado.
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.GroupCountDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/bar [get]
func (h *DashboardHandler) Bar(c *fiber.Ctx) error {
	out, err := h.uc.TopRequestedAssets(c.Context())
	if err != nil {
		return respondError(c, h.log, err, errorText{Internal: "Server Error"})
	}
	return c.JSON(out)
}
