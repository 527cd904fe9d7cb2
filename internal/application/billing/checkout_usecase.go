package billing

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/AssetVerse-api/internal/application/dto"
	"github.com/jhoicas/AssetVerse-api/internal/domain"
	"github.com/jhoicas/AssetVerse-api/internal/domain/entity"
	"github.com/jhoicas/AssetVerse-api/internal/domain/repository"
)

// CheckoutConfig parámetros del checkout.
type CheckoutConfig struct {
	Currency  string
	ClientURL string
}

const (
	// maxAmountDigits dígitos enteros admitidos para el monto en unidades mayores.
	maxAmountDigits = 12
	// maxAmountScale decimales admitidos antes de redondear a unidades menores.
	maxAmountScale = 18
)

var (
	minorUnits = decimal.NewFromInt(100)
	maxMinor   = decimal.NewFromInt(math.MaxInt64)
	minMinor   = decimal.NewFromInt(math.MinInt64)
)

// CheckoutUseCase puente entre la compra de paquetes HR y el gateway de pagos.
// El paquete confirmado se persiste en PackageRepository, no en memoria del proceso.
type CheckoutUseCase struct {
	gateway     CheckoutGateway
	packageRepo repository.PackageRepository
	cfg         CheckoutConfig
	now         func() time.Time
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(gateway CheckoutGateway, packageRepo repository.PackageRepository, cfg CheckoutConfig) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, packageRepo: packageRepo, cfg: cfg, now: time.Now}
}

// CreateCheckoutSession crea una sesión de un ítem por amount*100 unidades menores y devuelve la URL de pago.
// No valida el monto ni el tipo de paquete; el gateway rechaza montos inválidos.
func (uc *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, in dto.CreateCheckoutSessionRequest) (*dto.CheckoutSessionResponse, error) {
	q := url.Values{}
	q.Set("hrId", in.HRID)
	q.Set("packageType", in.PackageType)
	// {CHECKOUT_SESSION_ID} lo reemplaza el gateway; no debe quedar escapado.
	successURL := uc.cfg.ClientURL + "/packageUpgrade/upgrade-success?session_id={CHECKOUT_SESSION_ID}&" + q.Encode()

	unitAmount, err := ToMinorUnits(in.Amount)
	if err != nil {
		return nil, err
	}
	session, err := uc.gateway.CreateSession(ctx, CheckoutSessionInput{
		ProductName: fmt.Sprintf("AssetVerse %s Package", in.PackageType),
		Currency:    uc.cfg.Currency,
		UnitAmount:  unitAmount,
		Quantity:    1,
		SuccessURL:  successURL,
		CancelURL:   uc.cfg.ClientURL + "/packageUpgrade/upgrade-cancel",
	})
	if err != nil {
		return nil, fmt.Errorf("checkout: crear sesión: %w", err)
	}
	return &dto.CheckoutSessionResponse{URL: session.URL}, nil
}

// ConfirmPayment verifica la sesión en el gateway y, si está pagada, registra el paquete de la cuenta HR.
func (uc *CheckoutUseCase) ConfirmPayment(ctx context.Context, in dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentResponse, error) {
	if in.SessionID == "" || in.HRID == "" {
		return nil, domain.ErrMissingFields
	}
	session, err := uc.gateway.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("checkout: obtener sesión: %w", err)
	}
	if !session.Paid {
		return &dto.ConfirmPaymentResponse{Success: false}, nil
	}

	pkg := &entity.HRPackage{
		HRID:         in.HRID,
		PackageType:  in.PackageType,
		PackageLimit: entity.PackageLimit(in.PackageType),
		SessionID:    session.ID,
		Amount:       decimal.New(session.AmountTotal, -2),
		UpdatedAt:    uc.now(),
	}
	if err := uc.packageRepo.Upsert(ctx, pkg); err != nil {
		return nil, fmt.Errorf("checkout: guardar paquete: %w", err)
	}
	return &dto.ConfirmPaymentResponse{
		Success:      true,
		PackageType:  pkg.PackageType,
		PackageLimit: pkg.PackageLimit,
	}, nil
}

// GetPackage devuelve el paquete vigente de la cuenta HR.
func (uc *CheckoutUseCase) GetPackage(ctx context.Context, hrID string) (*dto.HRPackageResponse, error) {
	pkg, err := uc.packageRepo.GetByHRID(ctx, hrID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.HRPackageResponse{
		HRID:         pkg.HRID,
		PackageType:  pkg.PackageType,
		PackageLimit: pkg.PackageLimit,
		Amount:       pkg.Amount,
		UpdatedAt:    pkg.UpdatedAt,
	}, nil
}

// ToMinorUnits convierte un monto en unidades mayores a unidades menores (x100, redondeado).
// Exponente y dígitos se validan antes de operar; un monto fuera de rango devuelve ErrInvalidInput.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	exp := int64(amount.Exponent())
	if exp > maxAmountDigits || exp < -maxAmountScale ||
		(!amount.IsZero() && int64(amount.NumDigits())+exp > maxAmountDigits) {
		return 0, fmt.Errorf("%w: amount fuera de rango", domain.ErrInvalidInput)
	}
	minor := amount.Mul(minorUnits).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return 0, fmt.Errorf("%w: amount fuera de rango", domain.ErrInvalidInput)
	}
	return minor.IntPart(), nil
}
