package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateFormat formato de fecha en la API (ISO-8601, solo día).
const DateFormat = "2006-01-02"
