package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/AssetVerse-api/internal/domain"
)

const (
	// maxQuantityLen largo máximo del texto de entrada.
	maxQuantityLen = 32
	// maxQuantityDigits dígitos enteros admitidos (MaxInt32 tiene 10).
	maxQuantityDigits = 10
	// maxQuantityScale decimales admitidos ("3.000" es válido).
	maxQuantityScale = 16
)

var maxQuantity = decimal.NewFromInt(math.MaxInt32)

// ParseQuantity convierte un valor numérico (número JSON o string numérico) en una cantidad entera.
// Acepta "3", "3.0" y " 7 "; rechaza fracciones, negativos y valores no numéricos.
// El rango se valida sobre exponente y dígitos antes de operar, así "1e10000000" se rechaza sin expandirlo.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if len(s) > maxQuantityLen {
		return 0, fmt.Errorf("%w: quantity demasiado larga", domain.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q no es numérica", domain.ErrInvalidInput, raw)
	}
	exp := int64(d.Exponent())
	if exp > maxQuantityDigits || exp < -maxQuantityScale ||
		(!d.IsZero() && int64(d.NumDigits())+exp > maxQuantityDigits) {
		return 0, fmt.Errorf("%w: quantity %q fuera de rango", domain.ErrInvalidInput, raw)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: quantity %q no es entera", domain.ErrInvalidInput, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: quantity %q es negativa", domain.ErrInvalidInput, raw)
	}
	if d.GreaterThan(maxQuantity) {
		return 0, fmt.Errorf("%w: quantity %q fuera de rango", domain.ErrInvalidInput, raw)
	}
	return int(d.IntPart()), nil
}
