package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Open opens (creating if needed) the local SQLite file that backs the
// persistent slots.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Close closes the database handle.
func Close(db *gorm.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
