package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(macCmd)
}

var macCmd = &cobra.Command{
	Use:   "mac",
	Short: "Read the factory MAC address",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		out, err := tool.ReadMAC()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}
