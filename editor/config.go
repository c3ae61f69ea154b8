package editor

import (
	"log/slog"

	"github.com/iw2rmb/flourish-complete/popup"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	Style  Style
	KeyMap KeyMap

	// Clipboard backs the Paste binding. Nil disables it.
	Clipboard Clipboard

	// Completion. Without a Supplier the completion keys are ignored.
	Supplier         Supplier
	CompletionKeyMap CompletionKeyMap
	// CompletionView describes how items are drawn. Component and Key default
	// to a label/detail row keyed by CompletionItem.ID.
	CompletionView popup.View[CompletionItem]
	// AutoTrigger opens the popup when a word character is typed.
	AutoTrigger bool
	// NoResultsLabel is shown when the supplier returns nothing.
	NoResultsLabel string

	PopupStyles  *popup.Styles
	PopupMetrics *popup.Metrics

	Logger *slog.Logger
}

const defaultNoResultsLabel = "No results"

func normalizeConfig(cfg Config) Config {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.CompletionKeyMap = normalizeCompletionKeyMap(cfg.CompletionKeyMap)
	if cfg.CompletionView.Component == nil {
		cfg.CompletionView.Component = popup.LabelComponent(
			func(it CompletionItem) string { return it.Label },
			func(it CompletionItem) string { return it.Detail },
		)
	}
	if cfg.CompletionView.Key == nil {
		cfg.CompletionView.Key = func(it CompletionItem) string { return it.ID }
	}
	if cfg.NoResultsLabel == "" {
		cfg.NoResultsLabel = defaultNoResultsLabel
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
