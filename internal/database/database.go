package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the pure-Go "sqlite" driver used below
	_ "modernc.org/sqlite"
)

// Connect opens the snapshot database: PostgreSQL for a shared
// deployment, SQLite (pure-Go driver) for local files.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite snapshot file:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
