package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCheckoutSessionRequest entrada para iniciar el pago de un paquete.
type CreateCheckoutSessionRequest struct {
	HRID        string          `json:"hrId"`
	PackageType string          `json:"packageType"`
	Amount      decimal.Decimal `json:"amount"`
}

// CheckoutSessionResponse URL de redirección a la página de pago.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ConfirmPaymentRequest parámetros de query que el frontend reenvía tras el pago.
type ConfirmPaymentRequest struct {
	SessionID   string `query:"session_id"`
	HRID        string `query:"hrId"`
	PackageType string `query:"packageType"`
}

// ConfirmPaymentResponse resultado de la verificación del pago.
type ConfirmPaymentResponse struct {
	Success      bool   `json:"success"`
	PackageType  string `json:"packageType,omitempty"`
	PackageLimit int    `json:"packageLimit,omitempty"`
}

// PaymentErrorResponse cuerpo de error de las rutas de pago.
type PaymentErrorResponse struct {
	Error string `json:"error"`
}

// HRPackageResponse paquete vigente de una cuenta HR.
type HRPackageResponse struct {
	HRID         string          `json:"hrId"`
	PackageType  string          `json:"packageType"`
	PackageLimit int             `json:"packageLimit"`
	Amount       decimal.Decimal `json:"amount"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
