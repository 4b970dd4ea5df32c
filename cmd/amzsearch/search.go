package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corinnekunze/amazon-purchase-search/internal/cli"
	"github.com/corinnekunze/amazon-purchase-search/internal/display"
	"github.com/corinnekunze/amazon-purchase-search/internal/model"
	"github.com/corinnekunze/amazon-purchase-search/internal/session"
)

func init() {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search loaded purchases for a date and amount",
		Long: `Search the uploaded purchase history for matches against a target date
and amount. Matches come back as individual items, whole orders, or
combinations of items that sum to the target.

Requires data to be loaded on the server first (see "amzsearch upload").

Examples:
  amzsearch search --date 2024-03-15 --amount 53.99
  amzsearch search --date 2024-03-15 --amount 53.99 --type combination --days-range 14
  amzsearch search --date 2024-03-15 --amount 53.99 --output json`,
		RunE: runSearch,
	}

	searchCmd.Flags().String("date", "", "target date (YYYY-MM-DD)")
	searchCmd.Flags().String("amount", "", "target amount")
	searchCmd.Flags().String("days-range", "", "days to search on either side of the date")
	searchCmd.Flags().String("type", "all", "search type (all, item, order, combination)")
	searchCmd.Flags().String("max-combo", "", "maximum items per combination")
	searchCmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	_ = searchCmd.MarkFlagRequired("date")
	_ = searchCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	searchType, _ := cmd.Flags().GetString("type")
	if _, err := model.ParseSearchType(searchType); err != nil {
		return err
	}

	criteria := model.Criteria{
		SearchType:    searchType,
		DaysRange:     flagOrConfig(cmd, "days-range", "search.days_range"),
		MaxComboItems: flagOrConfig(cmd, "max-combo", "search.max_combo_items"),
	}
	criteria.Date, _ = cmd.Flags().GetString("date")
	criteria.Amount, _ = cmd.Flags().GetString("amount")

	store := openHistory()
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	_, controller, searcher := newPipeline(store)

	// A fresh process has no upload of its own; the server says whether
	// data is loaded.
	if err := controller.Refresh(cmd.Context()); err != nil {
		slog.Debug("Health check failed", "error", err)
	}

	results, err := searcher.Search(cmd.Context(), criteria)
	if err != nil {
		if errors.Is(err, session.ErrNoDataLoaded) {
			return fmt.Errorf("no data loaded: upload a purchase-history export first")
		}
		fmt.Println(cli.FormatError(err.Error()))
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Println(render(results))
	return nil
}

func render(rs *display.ResultSet) string {
	return display.NewRenderer().Render(rs)
}

// flagOrConfig prefers an explicitly set flag, then the config value.
func flagOrConfig(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}
