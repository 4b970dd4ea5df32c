package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/corinnekunze/amazon-purchase-search/internal/cli"
)

func init() {
	uploadCmd := &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Upload a purchase-history export to the search server",
		Long: `Upload an Amazon purchase-history CSV export. The file is sent to the
server as-is; the server parses it and keeps it in memory for searching.

Example:
  amzsearch upload ~/Downloads/amazon-order-history.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runUpload,
	}

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "uploading")
	reader := io.TeeReader(f, bar)

	_, controller, _ := newPipeline(nil)
	summary, err := controller.Submit(cmd.Context(), filepath.Base(path), reader)
	if err != nil {
		fmt.Println(cli.FormatError(err.Error()))
		return err
	}
	_ = bar.Finish()
	fmt.Println()

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Loaded %d items from %d orders",
		summary.TotalItems, summary.TotalOrders)))
	if summary.DateRange != nil {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Purchases span %s to %s",
			summary.DateRange.Earliest, summary.DateRange.Latest)))
	}

	return nil
}
