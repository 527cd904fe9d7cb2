package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AssetVerse-api/internal/application/billing"
	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain"
	"github.com/jhoicas/AssetVerse-api/internal/observability"
	"github.com/jhoicas/AssetVerse-api/pkg/logger"
)

// PaymentHandler expone el checkout de paquetes HR y el paquete vigente.
type PaymentHandler struct {
	uc  *billing.CheckoutUseCase
	log *logger.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.CheckoutUseCase, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, log: log}
}

// CreateCheckoutSession godoc
// @Summary      Crear sesión de pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCheckoutSessionRequest  true  "hrId, packageType y amount (unidades mayores)"
// @Success      200   {object}  dto.CheckoutSessionResponse
// @Failure      400   {object}  dto.PaymentErrorResponse
// @Failure      500   {object}  dto.PaymentErrorResponse
// @Router       /api/stripe/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var in dto.CreateCheckoutSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCheckoutSession(c.Context(), in)
	observability.CheckoutEvents.WithLabelValues("create_session", observability.Outcome(err)).Inc()
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.PaymentErrorResponse{Error: "Invalid amount"})
	}
	if err != nil {
		h.log.Error().Err(err).Str("hr_id", in.HRID).Msg("checkout: crear sesión")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.PaymentErrorResponse{Error: "Stripe session creation failed"})
	}
	return c.JSON(out)
}

// Success godoc
// @Summary      Confirmar pago
// @Description  Verifica la sesión; si está pagada registra el paquete de la cuenta HR.
// @Tags         payments
// @Produce      json
// @Param        session_id   query  string  true   "ID de la sesión"
// @Param        hrId         query  string  false  "Cuenta HR"
// @Param        packageType  query  string  false  "Basic | Standard | Premium"
// @Success      200  {object}  dto.ConfirmPaymentResponse
// @Failure      500  {object}  dto.PaymentErrorResponse
// @Router       /api/stripe/success [get]
func (h *PaymentHandler) Success(c *fiber.Ctx) error {
	var in dto.ConfirmPaymentRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ConfirmPayment(c.Context(), in)
	observability.CheckoutEvents.WithLabelValues("confirm", observability.Outcome(err)).Inc()
	if err != nil {
		h.log.Error().Err(err).Str("session_id", in.SessionID).Msg("checkout: verificar pago")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.PaymentErrorResponse{Error: "Error verifying payment."})
	}
	return c.JSON(out)
}

// GetPackage godoc
// @Summary      Paquete vigente de una cuenta HR
// @Tags         payments
// @Produce      json
// @Param        hrId  path  string  true  "Cuenta HR"
// @Success      200   {object}  dto.HRPackageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/packages/{hrId} [get]
func (h *PaymentHandler) GetPackage(c *fiber.Ctx) error {
	out, err := h.uc.GetPackage(c.Context(), c.Params("hrId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Package not found"})
		}
		return respondError(c, h.log, err, errorText{Internal: "Server Error"})
	}
	return c.JSON(out)
}
