package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/chakravarthikakarla/imagify/internal/config"
	"github.com/chakravarthikakarla/imagify/internal/storage/postgres/migrations"
)

type Storage struct {
	DB *pgxpool.Pool
}

func InitDB(ctx context.Context, cfg *config.Config) (*Storage, error) {
	dsn := cfg.DatabaseDSN()

	if err := runMigrations(ctx, dsn); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := dbpool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &Storage{DB: dbpool}, nil
}

func (s *Storage) Close() {
	s.DB.Close()
}

// goose работает через database/sql, поэтому миграции идут
// отдельным соединением через pgx stdlib-адаптер
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
