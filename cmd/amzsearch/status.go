package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corinnekunze/amazon-purchase-search/internal/cli"
)

func init() {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show server health and whether data is loaded",
		RunE:  runStatus,
	}

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	health, err := newAPIClient().Health(cmd.Context())
	if err != nil {
		fmt.Println(cli.FormatError("Server unreachable: " + err.Error()))
		return err
	}

	fmt.Println(cli.FormatSuccess("Server is " + health.Status))
	if health.DataLoaded {
		fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%s %d items from %d orders loaded",
			cli.PackageIcon, health.TotalItems, health.TotalOrders)))
	} else {
		fmt.Println(cli.FormatWarning("No purchase data loaded yet"))
	}

	return nil
}
