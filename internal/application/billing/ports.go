package billing

import "context"

// CheckoutSessionInput datos de una sesión de pago de un solo ítem.
type CheckoutSessionInput struct {
	ProductName string
	Currency    string
	UnitAmount  int64 // unidades menores (centavos)
	Quantity    int64
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession vista mínima de una sesión del gateway.
type CheckoutSession struct {
	ID          string
	URL         string
	Paid        bool
	AmountTotal int64 // unidades menores
	Currency    string
}

// CheckoutGateway puerto hacia el proveedor de pagos (servicio externo opaco).
type CheckoutGateway interface {
	CreateSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
