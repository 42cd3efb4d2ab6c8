package cmd

import (
	"fmt"

	"mod-compat/core/config"
	"mod-compat/core/wire"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var encodeInventoryPath string

// encodeCmd prints the metadata pages an inventory publishes as.
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode an inventory into lobby metadata pages",
	Long:  `Encodes a plugin inventory with the configured page budget and page limit, and lists the pages, their sizes and any plugins that did not fit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		records, err := loadInventory(encodeInventoryPath)
		if err != nil {
			return err
		}

		encoder := wire.NewEncoder(cfg.Compat.ReservedBytes, cfg.Compat.MaxPages)
		report := encoder.EncodeReport(records)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Page budget: %s, max pages: %d\n", humanize.Bytes(uint64(encoder.PageBudget)), encoder.MaxPages)
		for i, page := range report.Pages {
			fmt.Fprintf(out, "%s (%s): %s\n", wire.PageKey(i), humanize.Bytes(uint64(len(page))), page)
		}
		fmt.Fprintf(out, "Encoded %s of %s plugins\n", humanize.Comma(int64(report.Encoded)), humanize.Comma(int64(len(records))))
		if report.Reordered {
			fmt.Fprintln(out, "Inventory was reordered by compatibility priority to fit")
		}
		for _, guid := range report.Dropped {
			fmt.Fprintf(out, "Dropped: %s\n", guid)
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeInventoryPath, "inventory", "", "Path to the inventory JSON")
	_ = encodeCmd.MarkFlagRequired("inventory")
	RootCmd.AddCommand(encodeCmd)
}
