// Package stripe adapta billing.CheckoutGateway a Stripe Checkout.
package stripe

import (
	"context"
	"fmt"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/jhoicas/AssetVerse-api/internal/application/billing"
)

var _ billing.CheckoutGateway = (*CheckoutGateway)(nil)

// CheckoutGateway crea y consulta sesiones de Stripe Checkout.
type CheckoutGateway struct {
	sc *client.API
}

// NewCheckoutGateway construye el gateway con la clave secreta de Stripe.
func NewCheckoutGateway(secretKey string) *CheckoutGateway {
	return &CheckoutGateway{sc: client.New(secretKey, nil)}
}

// CreateSession crea una sesión de pago (mode=payment, tarjeta) con un único ítem.
func (g *CheckoutGateway) CreateSession(ctx context.Context, in billing.CheckoutSessionInput) (*billing.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency: stripego.String(in.Currency),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String(in.ProductName),
					},
					UnitAmount: stripego.Int64(in.UnitAmount),
				},
				Quantity: stripego.Int64(in.Quantity),
			},
		},
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(in.SuccessURL),
		CancelURL:  stripego.String(in.CancelURL),
	}
	params.Context = ctx

	s, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: crear sesión: %w", err)
	}
	return toCheckoutSession(s), nil
}

// GetSession recupera una sesión existente por ID.
func (g *CheckoutGateway) GetSession(ctx context.Context, sessionID string) (*billing.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.sc.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: obtener sesión %s: %w", sessionID, err)
	}
	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripego.CheckoutSession) *billing.CheckoutSession {
	return &billing.CheckoutSession{
		ID:          s.ID,
		URL:         s.URL,
		Paid:        s.PaymentStatus == stripego.CheckoutSessionPaymentStatusPaid,
		AmountTotal: s.AmountTotal,
		Currency:    string(s.Currency),
	}
}
