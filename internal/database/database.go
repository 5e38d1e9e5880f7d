// Package database owns the connection pool shared by every repository.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"
)

const DefaultMaxOpenConns = 10

type Config struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
}

// URL renders the config as a postgres:// connection string understood by
// both lib/pq and golang-migrate.
func (c Config) URL() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host,
		Path:   "/" + c.Name,
	}
	if c.Port != "" {
		u.Host = net.JoinHostPort(c.Host, c.Port)
	}
	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u.RawQuery = url.Values{"sslmode": {sslMode}}.Encode()
	return u.String()
}

// Open builds the pool. No connection is made until first use.
func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	Configure(db, cfg.MaxOpenConns)
	return db, nil
}

// Configure bounds the pool at maxOpen connections. Callers past the bound
// wait, without a timeout, until a connection is released.
func Configure(db *sql.DB, maxOpen int) {
	if maxOpen <= 0 {
		maxOpen = DefaultMaxOpenConns
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(time.Hour)
}

// VerifyConnection checks out one connection and immediately returns it to
// the pool.
func VerifyConnection(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return conn.Close()
}

// Connect prepares the pool at startup. Migration and reachability failures
// are logged and startup continues; only an unusable configuration fails.
func Connect(ctx context.Context, cfg Config, runMigrations bool) (*sql.DB, error) {
	if runMigrations {
		if err := Migrate(cfg); err != nil {
			log.Printf("Database migration error: %v", err)
		}
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := VerifyConnection(verifyCtx, db); err != nil {
		log.Printf("Database connection error: %v", err)
	} else {
		log.Printf("Connected to database %s", cfg.Name)
	}
	return db, nil
}
