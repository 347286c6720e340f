package repository

import (
	"context"
	"database/sql"
	"fmt"

	"AESCipherService/internal/domain"
)

type KeyRepository struct {
	db *sql.DB
}

func NewKeyRepository(db *sql.DB) *KeyRepository {
	return &KeyRepository{
		db: db,
	}
}

func (k *KeyRepository) Store(ctx context.Context, key domain.AESKey) error {
	query := "INSERT INTO aes_keys (key_id, owner_id, name, key_hex, created_at) VALUES ($1, $2, $3, $4, $5)"
	if _, err := k.db.ExecContext(ctx, query, key.ID, key.OwnerID, key.Name, key.KeyHex, key.CreatedAt); err != nil {
		return fmt.Errorf("error while inserting key: %w", err)
	}
	return nil
}

func (k *KeyRepository) GetByID(ctx context.Context, keyID string) (domain.AESKey, error) {
	query := "SELECT key_id, owner_id, name, key_hex, created_at FROM aes_keys WHERE key_id = $1"

	var key domain.AESKey

	row := k.db.QueryRowContext(ctx, query, keyID)
	if err := row.Scan(&key.ID, &key.OwnerID, &key.Name, &key.KeyHex, &key.CreatedAt); err != nil {
		return domain.AESKey{}, fmt.Errorf("error getting key by id: %w", err)
	}
	return key, nil
}

func (k *KeyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.AESKey, error) {
	query := "SELECT key_id, owner_id, name, key_hex, created_at FROM aes_keys WHERE owner_id = $1 ORDER BY created_at"

	rows, err := k.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing keys: %w", err)
	}
	defer rows.Close()

	var keys []domain.AESKey
	for rows.Next() {
		var key domain.AESKey
		if err := rows.Scan(&key.ID, &key.OwnerID, &key.Name, &key.KeyHex, &key.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
