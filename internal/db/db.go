package db

import (
	"fmt"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var (
	Once sync.Once

	DBConn *sqlx.DB

	connectErr error
)

// DBConnect opens the sqlite connection pool once and returns it.
func DBConnect(dbPath string) (*sqlx.DB, error) {
	Once.Do(func() {
		pool, err := sqlx.Open("sqlite3", dbPath)
		if err != nil {
			connectErr = fmt.Errorf("failed to open database connection: %w", err)
			return
		}
		// Single writer keeps sqlite happy under concurrent handlers.
		pool.SetMaxOpenConns(1)
		log.Printf("Connected to database at %s", dbPath)
		DBConn = pool
	})
	return DBConn, connectErr
}

// InitializeDB connects to the database and verifies the schema.
func InitializeDB(dbPath string) error {
	DB, err := DBConnect(dbPath)
	if err != nil {
		return err
	}

	if _, err := DB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS anime (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			air_date TIMESTAMP NOT NULL,
			num_of_episodes INTEGER NOT NULL DEFAULT 0,
			owner TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS watch_list (
			user_id TEXT NOT NULL,
			anime_name TEXT NOT NULL,
			progress INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, anime_name)
		);`,
	}

	for i, schema := range schemas {
		if _, err := DB.Exec(schema); err != nil {
			return fmt.Errorf("failed to create schema %d: %w", i, err)
		}
	}

	log.Println("DB connection initialized and schema verified.")

	return nil
}
