package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(flashIdCmd)
}

var flashIdCmd = &cobra.Command{
	Use:   "flashId",
	Short: "Read the SPI flash manufacturer and device ID",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		out, err := tool.FlashID()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}
