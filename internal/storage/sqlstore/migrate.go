package sqlstore

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"
)

const migrationTable = "schema_migrations"

// Migrate applies the *.sql files of migrationFS in name order, each at most once.
// Only the "-- +migrate Up" section of a file is executed.
func (s *Store) Migrate(ctx context.Context, migrationFS fs.FS) error {
	const op = "storage.sqlstore.Migrate"

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("%s: read migrations dir: %w", op, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	createSQL := `
		CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
			name TEXT PRIMARY KEY,
			applied_at BIGINT NOT NULL
		)`
	if _, err = s.DB.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("%s: ensure migration table: %w", op, err)
	}

	for _, file := range files {
		var applied int
		err = s.DB.QueryRowContext(ctx,
			s.dialect.Rebind(`SELECT COUNT(*) FROM `+migrationTable+` WHERE name = ?`),
			file,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("%s: check migration %s: %w", op, file, err)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("%s: read migration %s: %w", op, file, err)
		}

		upSQL := extractUp(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		err = s.InTx(ctx, func(ctx context.Context) error {
			if _, err := s.exec(ctx, upSQL); err != nil {
				return fmt.Errorf("exec migration %s: %w", file, err)
			}
			_, err := s.exec(ctx,
				`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
				file, toMillis(time.Now()),
			)
			if err != nil {
				return fmt.Errorf("record migration %s: %w", file, err)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func extractUp(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, "-- +migrate Down")
	if downIdx == -1 {
		return content[upIdx+len("-- +migrate Up"):]
	}
	return content[upIdx+len("-- +migrate Up") : downIdx]
}
