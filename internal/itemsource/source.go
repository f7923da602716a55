// Package itemsource loads dropdown items from files: plain text lists and
// SQLite databases.
package itemsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dropdown/internal/dropdown"
	appErrors "dropdown/internal/errors"
)

// Source produces the items for a dropdown.
type Source interface {
	Load(ctx context.Context) ([]dropdown.Item, error)
}

// Kind names a supported source format.
type Kind string

const (
	KindText   Kind = "text"
	KindSQLite Kind = "sqlite"
)

// DefaultQuery reads items from a table named items. Icon is optional.
const DefaultQuery = `SELECT id, title, COALESCE(icon, '') FROM items ORDER BY position, id`

var sqliteMagic = []byte("SQLite format 3\x00")

// Open inspects path and returns the matching Source. query only applies to
// SQLite sources; empty means DefaultQuery.
func Open(path, query string) (Source, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeItemSourceNotFound, "no item source configured", nil)
	}
	info, err := os.Stat(trimmed)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeItemSourceNotFound, fmt.Sprintf("item source %s not found", trimmed), err)
	}
	if err != nil {
		return nil, appErrors.New(appErrors.CodeItemSourceFailed, fmt.Sprintf("stat %s", trimmed), err)
	}
	if info.IsDir() {
		return nil, appErrors.New(appErrors.CodeUnsupportedSource, fmt.Sprintf("item source %s is a directory", trimmed), nil)
	}

	kind, err := Detect(trimmed)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindSQLite:
		return NewSQLite(trimmed, query), nil
	default:
		return NewText(trimmed), nil
	}
}

// Detect picks a format from the file extension, falling back to the SQLite
// header for unknown extensions.
func Detect(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, nil
	case ".txt", ".list", "":
		return KindText, nil
	}

	//nolint:gosec // G304: item source path comes from the user's own config
	f, err := os.Open(path)
	if err != nil {
		return "", appErrors.New(appErrors.CodeItemSourceFailed, fmt.Sprintf("open %s", path), err)
	}
	defer func() {
		_ = f.Close()
	}()
	header := make([]byte, len(sqliteMagic))
	if n, _ := f.Read(header); n == len(sqliteMagic) && string(header) == string(sqliteMagic) {
		return KindSQLite, nil
	}
	return "", appErrors.New(appErrors.CodeUnsupportedSource,
		fmt.Sprintf("unsupported item source %s (want .txt, .list, .db or .sqlite)", path), nil)
}

// Load is a convenience for Open followed by Load.
func Load(ctx context.Context, path, query string) ([]dropdown.Item, error) {
	src, err := Open(path, query)
	if err != nil {
		return nil, err
	}
	return src.Load(ctx)
}
