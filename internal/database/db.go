package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// maxAttempts bounds the startup connect loop.  Every tool process acquires
// one connection pool at startup; if the store is still unreachable after
// the final attempt the process aborts.
const maxAttempts = 4

// Open connects to MySQL and verifies the connection with a ping, retrying
// up to maxAttempts times before giving up.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, err
		}

		// Pool settings: one long-lived pool per tool process.
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			return db, nil
		}
		lastErr = err
		_ = db.Close()
		if attempt < maxAttempts {
			time.Sleep(2 * time.Second)
		}
	}
	return nil, fmt.Errorf("store unreachable after %d attempts: %w", maxAttempts, lastErr)
}
