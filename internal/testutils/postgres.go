package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/recruit-go/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StartPostgres connects to TEST_DB_DSN when set, otherwise starts a
// throwaway postgres container. The schema is migrated before returning.
func StartPostgres() (gdb *gorm.DB, cleanup func(), err error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB, err := openWithRetry(dsn, 1)
		if err != nil {
			return nil, nil, err
		}
		gdb, err := migrate(sqlDB)
		if err != nil {
			return nil, nil, err
		}
		return gdb, func() { _ = sqlDB.Close() }, nil
	}

	// testcontainers panics on some hosts without a docker socket.
	defer func() {
		if r := recover(); r != nil {
			gdb, cleanup, err = nil, nil, fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "recruit",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, err
	}

	host, err := pg.Host(ctx)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/recruit?sslmode=disable", host, port.Port())
	sqlDB, err := openWithRetry(dsn, 10)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}
	gdb, err = migrate(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	cleanup = func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}
	return gdb, cleanup, nil
}

func openWithRetry(dsn string, attempts int) (*sql.DB, error) {
	var (
		sqlDB *sql.DB
		err   error
	)
	for i := 0; i < attempts; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				return sqlDB, nil
			}
			_ = sqlDB.Close()
		}
		time.Sleep(time.Second)
	}
	return nil, err
}

func migrate(sqlDB *sql.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Truncate empties every workflow table and resets identities.
func Truncate(gdb *gorm.DB) error {
	tables := make([]string, 0, len(db.Models()))
	for _, m := range db.Models() {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return gdb.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error
}
