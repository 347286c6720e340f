package repository

import (
	"context"
	"database/sql"

	"AESCipherService/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u domain.User) error
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type KeyRepo interface {
	Store(ctx context.Context, key domain.AESKey) error
	GetByID(ctx context.Context, keyID string) (domain.AESKey, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.AESKey, error)
}

type Repository struct {
	UserRepo
	KeyRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		UserRepo: NewUserRepository(db),
		KeyRepo:  NewKeyRepository(db),
	}
}
