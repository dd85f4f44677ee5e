package entity

import "time"

// User usuario registrado. PasswordHash nunca se expone en respuestas.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedDate  time.Time
}
