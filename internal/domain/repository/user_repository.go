package repository

import (
	"context"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListAll(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
}
