package infra

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type SQLiteConfig struct {
	Path string
}

// NewSQLiteConnection opens the embedded store file in WAL mode so the
// broadcaster, rollup generator, reaper and query handlers can read and
// write concurrently without serializing through one session.
func NewSQLiteConnection(cfg SQLiteConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", cfg.Path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
