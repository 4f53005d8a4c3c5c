package database

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/alimgiray/blogposts/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// OpenSQLite opens (creating if needed) the SQLite database at dbPath and runs migrations.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("path", dbPath).Info("SQLite database connected with WAL mode")

	if err = RunSQLScripts(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// RunSQLScripts executes the embedded SQL scripts in name order
func RunSQLScripts(db *sql.DB) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := migrations.ReadFile(file)
		if err != nil {
			return err
		}

		if _, err = db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("run %s: %w", path.Base(file), err)
		}

		logger.Debugf("Executed SQL script: %s", path.Base(file))
	}

	return nil
}
