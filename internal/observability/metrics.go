// Package observability define las métricas Prometheus propias de AssetVerse.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTransitions cuenta intentos de aprobar/rechazar solicitudes por resultado.
	RequestTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetverse_request_transitions_total",
		Help: "Total de transiciones de solicitudes de assets por tipo y resultado",
	}, []string{"transition", "outcome"})

	// CheckoutEvents cuenta sesiones de pago creadas y confirmaciones por resultado.
	CheckoutEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetverse_checkout_events_total",
		Help: "Total de eventos del checkout de paquetes HR",
	}, []string{"event", "outcome"})

	// DashboardCacheLookups cuenta consultas al cache del dashboard (hit, miss, error).
	DashboardCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetverse_dashboard_cache_lookups_total",
		Help: "Consultas al cache de agregados del dashboard",
	}, []string{"result"})
)

// Outcome etiqueta el resultado de una operación para las métricas.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
