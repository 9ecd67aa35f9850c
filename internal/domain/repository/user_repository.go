package repository

import (
	"context"

	"github.com/will-aam/stock/internal/domain/entity"
)

// UserRepository puerto de persistencia para operadores.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error) // nil si no existe
}
