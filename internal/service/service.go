package service

import (
	"context"

	"AESCipherService/internal/domain"
	"AESCipherService/internal/infrastructure/kafka"
	"AESCipherService/internal/repository"
)

type Auth interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type Cipher interface {
	Encrypt(ctx context.Context, userID string, req domain.CipherRequest) (domain.CipherResult, error)
	Decrypt(ctx context.Context, userID string, req domain.CipherRequest) (string, error)
	CreateKey(ctx context.Context, userID, name, keyString string) (domain.AESKey, error)
	ListKeys(ctx context.Context, userID string) ([]domain.AESKey, error)
	GetKey(ctx context.Context, userID, keyID string) (domain.AESKey, error)
}

type Service struct {
	Auth
	Cipher
}

func NewService(repositories *repository.Repository, audit *kafka.Producer) *Service {
	return &Service{
		Auth:   NewAuthService(repositories.UserRepo),
		Cipher: NewCipherService(repositories.KeyRepo, audit),
	}
}
