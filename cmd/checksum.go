package cmd

import (
	"fmt"

	"mod-compat/core/checksum"

	"github.com/spf13/cobra"
)

var checksumInventoryPath string

// checksumCmd prints the checksum of an inventory.
var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Print the checksum of an inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadInventory(checksumInventoryPath)
		if err != nil {
			return err
		}

		sum := checksum.Compute(records)
		if sum == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No everyone-level plugins: checksum filtering disabled")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), sum)
		return nil
	},
}

func init() {
	checksumCmd.Flags().StringVar(&checksumInventoryPath, "inventory", "", "Path to the inventory JSON")
	_ = checksumCmd.MarkFlagRequired("inventory")
	RootCmd.AddCommand(checksumCmd)
}
