package dto

// ErrorResponse cuerpo de error HTTP. Code solo lo usan los middlewares de auth;
// Error solo se llena en fallos internos de escritura del catálogo.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// InsertResult confirmación de alta con el ID asignado.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult cantidad de documentos efectivamente modificados.
type UpdateResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult cantidad de documentos eliminados.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// DeleteResponse respuesta de borrado con mensaje y resultado.
type DeleteResponse struct {
	Message string       `json:"message"`
	Result  DeleteResult `json:"result"`
}

// MessageResponse respuesta con solo mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
