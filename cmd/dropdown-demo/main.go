// Demo program to exercise the dropdown control: a bordered anchor, a
// floating list, a simulated on-screen keyboard and an event log.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dropdown/internal/config"
	"dropdown/internal/debug"
	"dropdown/internal/dropdown"
	"dropdown/internal/itemsource"
	"dropdown/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const loadTimeout = 5 * time.Second

var defaultItems = []string{
	"Amsterdam", "Berlin", "Copenhagen", "Dublin", "Helsinki", "Lisbon",
	"London", "Madrid", "Oslo", "Paris", "Prague", "Rome", "Stockholm", "Vienna",
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.dropdown/debug.log")
	searchFlag := flag.Bool("search", config.GetBool(config.KeySearch), "Make the anchor an editable filter field")
	itemsFlag := flag.String("items", config.GetString(config.KeyItemsSource), "Item source: a text list or a SQLite database")
	queryFlag := flag.String("query", config.GetString(config.KeyItemsQuery), "SQL query for SQLite item sources (id, title, icon)")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	placeholderFlag := flag.String("placeholder", config.GetString(config.KeyPlaceholder), "Placeholder shown when nothing is selected")
	reduceMotionFlag := flag.Bool("reduce-motion", config.GetBool(config.KeyReduceMotion), "Use short linear transitions")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	overrides := collectOverrides(runtimeFlags{
		search:       searchFlag,
		items:        itemsFlag,
		query:        queryFlag,
		theme:        themeFlag,
		placeholder:  placeholderFlag,
		reduceMotion: reduceMotionFlag,
	}, visited)
	if err := config.ApplyOverrides(overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying flags: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()

	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	if name := config.GetString(config.KeyTheme); name != "" && !theme.Set(name) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", name, theme.CurrentName())
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Dropdown()
	if err != nil {
		return err
	}
	items, err := loadItems(config.GetString(config.KeyItemsSource), config.GetString(config.KeyItemsQuery))
	if err != nil {
		return err
	}
	m := newModel(cfg, items, config.GetInt(config.KeyKeyboardHeight))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

func loadItems(source, query string) ([]dropdown.Item, error) {
	if strings.TrimSpace(source) == "" {
		return dropdown.Strings(defaultItems...), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	items, err := itemsource.Load(ctx, source, query)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return items, nil
}

type runtimeFlags struct {
	search       *bool
	items        *string
	query        *string
	theme        *string
	placeholder  *string
	reduceMotion *bool
}

// collectOverrides maps explicitly set flags onto config keys.
func collectOverrides(flags runtimeFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	set := func(name, key string, value any) {
		if _, ok := visited[name]; ok {
			overrides[key] = value
		}
	}
	set("search", config.KeySearch, *flags.search)
	set("items", config.KeyItemsSource, strings.TrimSpace(*flags.items))
	set("query", config.KeyItemsQuery, *flags.query)
	set("theme", config.KeyTheme, strings.TrimSpace(*flags.theme))
	set("placeholder", config.KeyPlaceholder, *flags.placeholder)
	set("reduce-motion", config.KeyReduceMotion, *flags.reduceMotion)
	return overrides
}
