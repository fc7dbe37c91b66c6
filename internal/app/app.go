package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/subdeck/subdeck/internal/cache"
	"github.com/subdeck/subdeck/internal/config"
	"github.com/subdeck/subdeck/internal/list"
	"github.com/subdeck/subdeck/internal/prefs"
	"github.com/subdeck/subdeck/internal/subtrack"
	"github.com/subdeck/subdeck/internal/ui"
)

// Options configure the subdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/subdeck/prefs.toml
	PageSize   int    // zero uses the server default
}

// Run boots the subdeck TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.APIBase == "" {
		return errors.New("config: api_base is required")
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := subtrack.NewClient(cfg.APIBase, cfg.Token)
	if err != nil {
		return fmt.Errorf("init subtrack client: %w", err)
	}

	store := cache.NewStore(cfg.CacheDir, nil)

	ctrl := list.NewController(client, store, opts.PageSize)
	applyPrefs(ctrl, userPrefs)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: ctrl,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// applyPrefs seeds the controller's sort from saved preferences, ignoring
// values the server would reject.
func applyPrefs(ctrl *list.Controller, p prefs.Prefs) {
	field := list.SortField(p.SortBy)
	switch field {
	case list.SortNextBilling, list.SortName, list.SortCost, list.SortCreatedAt:
	default:
		field = list.SortNextBilling
	}
	dir := list.SortDir(p.SortOrder)
	if dir != list.Ascending && dir != list.Descending {
		dir = list.Ascending
	}
	ctrl.SetSort(field, dir)
}
