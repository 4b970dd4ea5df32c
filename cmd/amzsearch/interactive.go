package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corinnekunze/amazon-purchase-search/internal/display"
	"github.com/corinnekunze/amazon-purchase-search/internal/tui"
)

func init() {
	interactiveCmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Upload and search in one interactive session",
		RunE:    runInteractive,
	}

	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(_ *cobra.Command, _ []string) error {
	store := openHistory()
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	_, controller, searcher := newPipeline(store)

	return tui.Run(tui.Config{
		Controller:    controller,
		Searcher:      searcher,
		Renderer:      display.NewRenderer(),
		DaysRange:     viper.GetString("search.days_range"),
		MaxComboItems: viper.GetString("search.max_combo_items"),
	})
}
