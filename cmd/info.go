package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show chip, flash and MAC information",
	Long:  "Queries the connected chip for its chip ID, flash ID and factory MAC address",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		queries := []struct {
			label string
			query func() (string, error)
		}{
			{"Getting chip information...", tool.ChipID},
			{"Getting flash ID...", tool.FlashID},
			{"Getting MAC address...", tool.ReadMAC},
		}
		for _, q := range queries {
			fmt.Println(q.label)
			out, err := q.query()
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Print(out)
		}
	},
}
