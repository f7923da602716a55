package config

import (
	"fmt"

	"dropdown/internal/dropdown"
	apperrors "dropdown/internal/errors"
)

// Dropdown builds a dropdown.Config from the dropdown.* keys, starting from
// dropdown.DefaultConfig so key bindings and glyphs keep their defaults.
func Dropdown() (dropdown.Config, error) {
	cfg := dropdown.DefaultConfig().
		WithPlaceholder(GetString(KeyPlaceholder)).
		WithAnchorWidth(GetInt(KeyAnchorWidth)).
		WithSearch(GetBool(KeySearch)).
		WithRowHeight(GetInt(KeyRowHeight)).
		WithMaxHeight(GetInt(KeyMaxHeight)).
		WithListWidth(GetInt(KeyListWidth)).
		WithSpacing(GetInt(KeySpacing)).
		WithDuration(GetDuration(KeyAnimationDuration))

	cfg.Style.Scrim = GetBool(KeyScrim)
	cfg.Behavior = dropdown.Behavior{
		HideOnSelect:         GetBool(KeyHideOnSelect),
		ShowCheckmark:        GetBool(KeyShowCheckmark),
		HandleKeyboard:       GetBool(KeyHandleKeyboard),
		ScrollToSelection:    GetBool(KeyScrollToSelection),
		FlashScrollIndicator: GetBool(KeyFlashScrollIndicator),
	}
	cfg.Search.ClearSelectionOnOpen = GetBool(KeyClearOnOpen)
	cfg.Animation.ReduceMotion = GetBool(KeyReduceMotion)

	if err := Validate(cfg); err != nil {
		return dropdown.Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes the control cannot lay out.
func Validate(cfg dropdown.Config) error {
	var problem string
	switch {
	case cfg.Style.RowHeight < 1:
		problem = fmt.Sprintf("%s must be at least 1, got %d", KeyRowHeight, cfg.Style.RowHeight)
	case cfg.List.MaxHeight < 0:
		problem = fmt.Sprintf("%s must not be negative, got %d", KeyMaxHeight, cfg.List.MaxHeight)
	case cfg.List.Spacing < 0:
		problem = fmt.Sprintf("%s must not be negative, got %d", KeySpacing, cfg.List.Spacing)
	case cfg.List.Width < 0:
		problem = fmt.Sprintf("%s must not be negative, got %d", KeyListWidth, cfg.List.Width)
	case cfg.AnchorWidth < 8:
		problem = fmt.Sprintf("%s must be at least 8, got %d", KeyAnchorWidth, cfg.AnchorWidth)
	case cfg.Animation.Duration < 0:
		problem = fmt.Sprintf("%s must not be negative, got %s", KeyAnimationDuration, cfg.Animation.Duration)
	default:
		return nil
	}
	return apperrors.New(apperrors.CodeConfigurationError, problem, nil)
}
