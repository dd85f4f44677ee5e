package dto

import "strings"

// ErrorResponse cuerpo de error HTTP uniforme: {"message": "..."}.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MissingFieldsMessage arma el mensaje 422 para campos requeridos ausentes,
// con singular/plural correcto: "Missing field: X" / "Missing fields: X, Y".
func MissingFieldsMessage(fields []string) string {
	if len(fields) == 1 {
		return "Missing field: " + fields[0]
	}
	return "Missing fields: " + strings.Join(fields, ", ")
}
