package dto

// GroupCountDTO un grupo del dashboard (tipo de asset o nombre solicitado) con su conteo.
// El nombre del campo _id se mantiene por compatibilidad con el frontend de gráficos.
type GroupCountDTO struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}
