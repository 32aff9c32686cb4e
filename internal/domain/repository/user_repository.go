package repository

import (
	"context"

	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
// GetByUsername devuelve (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}
