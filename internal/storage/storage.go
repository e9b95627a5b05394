// Package storage loads the initial task list. Seeds are read once at
// startup; nothing is ever written back.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"todomatic/internal/tasks"
)

var ErrUnsupportedSeed = errors.New("unsupported seed file")

type Store struct {
	db *sql.DB
}

// Open opens a sqlite seed database read-only.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath, "ro"))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadSeed returns the rows of the tasks table ordered by position, then
// rowid.
func (s *Store) LoadSeed() ([]tasks.Task, error) {
	rows, err := s.db.Query(`SELECT id, name, completed FROM tasks ORDER BY position, rowid;`)
	if err != nil {
		return nil, fmt.Errorf("query seed tasks: %w", err)
	}
	defer rows.Close()

	var out []tasks.Task
	for rows.Next() {
		var t tasks.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Name, &completed); err != nil {
			return nil, err
		}
		t.Completed = completed == 1
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type yamlSeed struct {
	Tasks []tasks.Task `yaml:"tasks"`
}

// LoadSeedFile reads seed tasks from a sqlite database (.db, .sqlite) or a
// YAML document (.yaml, .yml) with a top-level "tasks" list.
func LoadSeedFile(path string) ([]tasks.Task, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		s, err := Open(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.LoadSeed()
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var doc yamlSeed
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return doc.Tasks, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSeed, path)
	}
}

func sqliteDSN(path, mode string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", mode)
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
