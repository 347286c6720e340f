package service

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"AESCipherService/algorithm/aescipher"
	"AESCipherService/internal/domain"
	myErrors "AESCipherService/internal/errors"
	"AESCipherService/internal/infrastructure/kafka"
	"AESCipherService/internal/repository"

	"github.com/google/uuid"
)

type CipherService struct {
	keys  repository.KeyRepo
	audit *kafka.Producer
}

func NewCipherService(keyRepo repository.KeyRepo, audit *kafka.Producer) *CipherService {
	return &CipherService{
		keys:  keyRepo,
		audit: audit,
	}
}

func (s *CipherService) Encrypt(ctx context.Context, userID string, req domain.CipherRequest) (domain.CipherResult, error) {
	mode, err := aescipher.ParseMode(req.Mode)
	if err != nil {
		return domain.CipherResult{}, err
	}

	keyString, err := s.resolveKey(ctx, userID, req)
	if err != nil {
		return domain.CipherResult{}, err
	}

	cipherHex, ivHex, err := aescipher.Encrypt(req.Plaintext, keyString, mode, req.IV)
	s.publishAudit(ctx, "encrypt", req.Mode, userID, req.KeyID, err == nil)
	if err != nil {
		return domain.CipherResult{}, err
	}

	return domain.CipherResult{CipherHex: cipherHex, IVHex: ivHex}, nil
}

func (s *CipherService) Decrypt(ctx context.Context, userID string, req domain.CipherRequest) (string, error) {
	mode, err := aescipher.ParseMode(req.Mode)
	if err != nil {
		return "", err
	}

	keyString, err := s.resolveKey(ctx, userID, req)
	if err != nil {
		return "", err
	}

	plaintext, err := aescipher.Decrypt(req.CipherHex, keyString, mode, req.IV)
	s.publishAudit(ctx, "decrypt", req.Mode, userID, req.KeyID, err == nil)
	if err != nil {
		return "", err
	}

	return plaintext, nil
}

func (s *CipherService) CreateKey(ctx context.Context, userID, name, keyString string) (domain.AESKey, error) {
	var keyBytes []byte
	var err error

	if keyString == "" {
		keyBytes, err = aescipher.GenerateKey()
	} else {
		keyBytes, err = aescipher.NormalizeKey(keyString)
	}
	if err != nil {
		return domain.AESKey{}, err
	}

	key := domain.AESKey{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Name:      name,
		KeyHex:    hex.EncodeToString(keyBytes),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.keys.Store(ctx, key); err != nil {
		return domain.AESKey{}, fmt.Errorf("error storing key: %w", err)
	}
	return key, nil
}

func (s *CipherService) ListKeys(ctx context.Context, userID string) ([]domain.AESKey, error) {
	return s.keys.ListByOwner(ctx, userID)
}

func (s *CipherService) GetKey(ctx context.Context, userID, keyID string) (domain.AESKey, error) {
	key, err := s.keys.GetByID(ctx, keyID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AESKey{}, myErrors.ErrKeyNotFound
	}
	if err != nil {
		return domain.AESKey{}, err
	}
	if key.OwnerID != userID {
		return domain.AESKey{}, myErrors.ErrKeyNotFound
	}
	return key, nil
}

// resolveKey picks the key material for a cipher call: a stored key when the
// request names one, the inline key string otherwise.
func (s *CipherService) resolveKey(ctx context.Context, userID string, req domain.CipherRequest) (string, error) {
	if req.KeyID != "" {
		key, err := s.GetKey(ctx, userID, req.KeyID)
		if err != nil {
			return "", err
		}
		return key.KeyHex, nil
	}
	if req.Key == "" {
		return "", myErrors.ErrMissingKey
	}
	return req.Key, nil
}

// publishAudit reports the call to the audit topic. Auditing is best effort:
// a broker failure is logged and never fails the cipher call.
func (s *CipherService) publishAudit(ctx context.Context, operation, mode, userID, keyID string, success bool) {
	if s.audit == nil {
		return
	}
	event := kafka.AuditEvent{
		Operation: operation,
		Mode:      mode,
		UserID:    userID,
		KeyID:     keyID,
		Success:   success,
		At:        time.Now().UTC(),
	}
	if err := s.audit.SendEvent(ctx, event); err != nil {
		slog.Error("failed to publish audit event", "error", err)
	}
}
