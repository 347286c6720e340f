package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"AESCipherService/internal/config/storageConfig"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func NewStorage(dbConfig *storageConfig.Config) (*sql.DB, error) {

	connectionString := fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		dbConfig.Username, dbConfig.Password,
		dbConfig.Host, dbConfig.Port,
		dbConfig.DBName, dbConfig.SSLMode,
	)

	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(12)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(20 * time.Minute)

	if err := applyMigrations(connectionString, dbConfig.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

func applyMigrations(connectionString, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, connectionString)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
