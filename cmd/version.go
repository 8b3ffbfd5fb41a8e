package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pandiyarajk/espflash/pkg/esptool"
)

const version = "1.0.0"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show espflash and esptool versions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("espflash %s\n", version)

		v, err := esptool.Version(esptoolPath)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(v)
	},
}
