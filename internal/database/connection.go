package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"brodverk-backend/internal/logger"

	_ "github.com/lib/pq"
)

func Connect(databaseURL string, log *logger.Logger) (*sql.DB, error) {
	// Log the connection target without exposing credentials
	log.Infof("database: connecting to %s", safeDatabaseURL(databaseURL))

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	log.Infof("database: connection established")
	return db, nil
}

// safeDatabaseURL strips the password out of a connection URL.
func safeDatabaseURL(databaseURL string) string {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "(unparseable database URL)"
	}

	safeURL := &url.URL{
		Scheme:   parsed.Scheme,
		Host:     parsed.Host,
		Path:     parsed.Path,
		RawQuery: parsed.RawQuery,
	}
	if parsed.User != nil {
		if username := parsed.User.Username(); username != "" {
			safeURL.User = url.User(username)
		}
	}
	return safeURL.String()
}
