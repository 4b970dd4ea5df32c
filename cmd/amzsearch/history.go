package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corinnekunze/amazon-purchase-search/internal/cli"
)

func init() {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent searches",
		RunE:  runHistory,
	}

	historyCmd.Flags().IntP("limit", "n", 10, "number of searches to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store := openHistory()
	if store == nil {
		return fmt.Errorf("search history is unavailable")
	}
	defer func() { _ = store.Close() }()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println(cli.FormatWarning("No searches recorded yet"))
		return nil
	}

	fmt.Println(cli.FormatTitle("Recent searches"))
	for _, e := range entries {
		fmt.Printf("  %s  $%s ±%sd (%s)  %s\n",
			e.Criteria.Date,
			e.Criteria.Amount,
			e.Criteria.DaysRange,
			e.Criteria.SearchType,
			matchSummary(e.TotalMatches))
		fmt.Printf("     %s\n", cli.SubtleStyle.Render(e.SearchedAt.Local().Format("2006-01-02 15:04")))
	}

	return nil
}

func matchSummary(total int) string {
	if total == 0 {
		return cli.SubtleStyle.Render("no matches")
	}
	return cli.SuccessStyle.Render(fmt.Sprintf("%d matches", total))
}
