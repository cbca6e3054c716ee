package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventHub/internal/config"
	"eventHub/internal/storage/postgres/migrations"
	"eventHub/internal/storage/sqlstore"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var Dialect = sqlstore.Dialect{
	Name:              "postgres",
	NumberedParams:    true,
	LockClause:        "FOR UPDATE",
	IsUniqueViolation: isUniqueViolation,
}

func InitDB(dbCfg *config.Database) (*sqlstore.Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	store := sqlstore.New(db, Dialect)

	if err = store.Migrate(context.Background(), migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
