package entity

import "time"

// User operador del sistema de conteo.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
