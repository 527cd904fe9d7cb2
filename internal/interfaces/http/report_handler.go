package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// ReportHandler sirve el reporte PDF de inventario.
type ReportHandler struct {
	uc  *appanalytics.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// AssetsPDF godoc
// @Summary      Reporte PDF de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/assets.pdf [get]
func (h *ReportHandler) AssetsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.AssetReportPDF(c.Context())
	if err != nil {
		return respondError(c, h.log, err, errorText{Internal: "Report generation failed"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="assets-%s.pdf"`, c.Context().Time().Format("20060102")))
	return c.Send(pdfBytes)
}
