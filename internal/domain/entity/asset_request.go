package entity

import "time"

// RequestStatus estado del ciclo de vida de una solicitud de asset.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Valores por defecto al crear una solicitud sin identidad del solicitante.
const (
	DefaultRequesterName  = "Anonymous"
	DefaultRequesterEmail = "unknown"
)

// AssetRequest reclamo sobre el stock de un Asset, sujeto a aprobación.
// AssetName es una copia del nombre del asset al momento de crear la solicitud y no se resincroniza.
type AssetRequest struct {
	ID          string
	AssetID     string // referencia débil, sin FK
	AssetName   string
	Quantity    int
	Reason      string
	Status      RequestStatus
	UserName    string
	Email       string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// IsTerminal indica si el estado ya no admite transiciones.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// CanTransition valida la máquina de estados: solo pending → approved | rejected.
func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return s == RequestPending && to.IsTerminal()
}
