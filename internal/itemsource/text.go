package itemsource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"dropdown/internal/dropdown"
	appErrors "dropdown/internal/errors"
)

// Text reads one item per line. A line is either a title or icon<TAB>title.
// Blank lines and lines starting with # are skipped.
type Text struct {
	path string
}

// NewText returns a Source backed by the text file at path.
func NewText(path string) *Text {
	return &Text{path: path}
}

func (t *Text) Load(ctx context.Context) ([]dropdown.Item, error) {
	//nolint:gosec // G304: item source path comes from the user's own config
	f, err := os.Open(t.path)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeItemSourceFailed, fmt.Sprintf("open %s", t.path), err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ParseText(ctx, f)
}

// ParseText parses the text list format from r.
func ParseText(ctx context.Context, r io.Reader) ([]dropdown.Item, error) {
	var items []dropdown.Item
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		icon, title := "", text
		if before, after, ok := strings.Cut(text, "\t"); ok {
			icon, title = strings.TrimSpace(before), strings.TrimSpace(after)
		}
		if title == "" {
			return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("line %d: missing title", line), nil)
		}
		items = append(items, dropdown.Option{Key: title, Label: title, Icon: icon})
	}
	if err := scanner.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, "read item list", err)
	}
	return items, nil
}
