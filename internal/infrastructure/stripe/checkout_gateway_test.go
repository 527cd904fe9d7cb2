package stripe

import (
	"testing"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
)

func TestToCheckoutSession(t *testing.T) {
	s := &stripego.CheckoutSession{
		ID:            "cs_test_1",
		URL:           "https://checkout.stripe.com/c/pay/cs_test_1",
		PaymentStatus: stripego.CheckoutSessionPaymentStatusPaid,
		AmountTotal:   4999,
		Currency:      stripego.CurrencyUSD,
	}
	got := toCheckoutSession(s)
	assert.Equal(t, "cs_test_1", got.ID)
	assert.True(t, got.Paid)
	assert.Equal(t, int64(4999), got.AmountTotal)
	assert.Equal(t, "usd", got.Currency)

	s.PaymentStatus = stripego.CheckoutSessionPaymentStatusUnpaid
	assert.False(t, toCheckoutSession(s).Paid)
}
