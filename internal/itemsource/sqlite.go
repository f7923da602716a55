package itemsource

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"dropdown/internal/debug"
	"dropdown/internal/dropdown"
	appErrors "dropdown/internal/errors"
)

// SQLite reads items from a database opened read-only. The query must
// return three text columns: id, title, icon.
type SQLite struct {
	path  string
	dsn   string
	query string
}

// NewSQLite returns a Source backed by the database at path. An empty query
// uses DefaultQuery.
func NewSQLite(path, query string) *SQLite {
	if strings.TrimSpace(query) == "" {
		query = DefaultQuery
	}
	return &SQLite{
		path:  path,
		dsn:   buildDSN(path),
		query: query,
	}
}

// buildDSN creates a read-only DSN for the given path.
func buildDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLite) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

func (s *SQLite) Load(ctx context.Context) ([]dropdown.Item, error) {
	db, err := s.openDB(ctx)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeItemSourceFailed, fmt.Sprintf("open %s", s.path), err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeItemSourceFailed, "query items", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, appErrors.New(appErrors.CodeItemSourceFailed, "read columns", err)
	}
	if len(cols) != 3 {
		return nil, appErrors.New(appErrors.CodeParseFailed,
			fmt.Sprintf("item query must return id, title, icon; got %d columns", len(cols)), nil)
	}

	var items []dropdown.Item
	for rows.Next() {
		var id, title, icon sql.NullString
		if err := rows.Scan(&id, &title, &icon); err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, "scan item", err)
		}
		if !title.Valid || strings.TrimSpace(title.String) == "" {
			debug.Logf("itemsource: skipping row %q with empty title", id.String)
			continue
		}
		opt := dropdown.Option{Label: title.String, Icon: icon.String}
		if id.Valid && id.String != "" {
			opt.Key = id.String
		}
		items = append(items, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeItemSourceFailed, "iterate items", err)
	}
	debug.Logf("itemsource: loaded %d items from %s", len(items), s.path)
	return items, nil
}
