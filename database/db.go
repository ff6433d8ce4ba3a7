package database

import (
	"bytes"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"booklib/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Schema is fixed by hand rather than auto-migrated: catalogs written by
// earlier releases must keep the exact table shape, including the
// declared-but-unenforced foreign key on books.user_id.
const (
	createUsersTable = `
        CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT UNIQUE,
            password TEXT
        )`
	createBooksTable = `
         CREATE TABLE IF NOT EXISTS books (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER,
            title TEXT,
            author TEXT,
            year INTEGER,
            genre TEXT,
            content TEXT,
            notes TEXT,
            FOREIGN KEY (user_id) REFERENCES users (id)
        )`
)

func initTables() error {
	if err := db.Exec(createUsersTable).Error; err != nil {
		log.Printf("Error creating users table: %v", err)
		return err
	}
	if err := db.Exec(createBooksTable).Error; err != nil {
		log.Printf("Error creating books table: %v", err)
		return err
	}
	return nil
}

// InitDB opens the sqlite catalog at dbPath and ensures the schema exists.
func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	// foreign_keys stays OFF: books deliberately outlive their owner,
	// deleting an account must not fail on (or cascade to) its books.

	return initTables()
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// IsDuplicate reports whether err resulted from a unique-constraint
// violation, e.g. registering a username that is already taken.
func IsDuplicate(err error) bool {
	return err == gorm.ErrDuplicatedKey
}

func IsSQLiteDB(file io.ReaderAt) (bool, error) {
	signature := []byte("SQLite format 3\x00")
	buf := make([]byte, len(signature))
	_, err := file.ReadAt(buf, 0)
	if err != nil {
		return false, err
	}
	return bytes.Equal(buf, signature), nil
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
