package dto

import "time"

// DataResponse envelope de éxito de los endpoints de negocio: {success:true, ...}.
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK construye el envelope de éxito con payload.
func OK(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

// OKMessage construye el envelope de éxito con mensaje y sin payload (delete, update).
func OKMessage(msg string) DataResponse {
	return DataResponse{Success: true, Message: msg}
}

// FailResponse envelope de falla de los endpoints de negocio: {success:false, ...}.
// Error lleva el detalle crudo solo en modo development.
type FailResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// StatusResponse envelope del boundary global (clasificador de errores, 404 del
// router y health checks): {status:"OK"|"ERROR", ..., timestamp ISO-8601}.
type StatusResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Path      string            `json:"path,omitempty"`
	Method    string            `json:"method,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Error     string            `json:"error,omitempty"`
	Stack     string            `json:"stack,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// NowISO timestamp ISO-8601 en UTC para los envelopes.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
