package entity

// Código del estado sembrado requerido para anular ventas. Su ausencia en la
// tabla de estados es un defecto de despliegue, no un error de usuario.
const StatusCodeVoided = "VOIDED"

// Status es una fila de la tabla de referencia de estados (datos sembrados).
type Status struct {
	ID   string
	Code string
	Name string
}
