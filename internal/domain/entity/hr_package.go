package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paquetes de suscripción y su límite de uso.
const (
	PackageBasic    = "Basic"
	PackageStandard = "Standard"
	PackagePremium  = "Premium"
)

var packageLimits = map[string]int{
	PackageBasic:    5,
	PackageStandard: 20,
	PackagePremium:  50,
}

// PackageLimit devuelve el tope del paquete; un paquete desconocido recibe el de Basic.
func PackageLimit(packageType string) int {
	if l, ok := packageLimits[packageType]; ok {
		return l
	}
	return packageLimits[PackageBasic]
}

// HRPackage paquete contratado por una cuenta HR tras un pago confirmado.
type HRPackage struct {
	HRID         string
	PackageType  string
	PackageLimit int
	SessionID    string
	Amount       decimal.Decimal // monto cobrado en unidades mayores
	UpdatedAt    time.Time
}
