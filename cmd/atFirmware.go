package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Pandiyarajk/espflash/pkg/esptool"
)

func init() {
	atFirmwareCmd.Flags().StringVarP(&file, "file", "f", "", "AT firmware image")
	atFirmwareCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(atFirmwareCmd)
}

var atFirmwareCmd = &cobra.Command{
	Use:   "atFirmware",
	Short: "Write an AT command firmware to an ESP01",
	Long:  "Writes an Espressif AT command firmware image at address 0x0. Only meaningful for ESP01 modules.",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		if tool.Chip().Name != "esp01" {
			fmt.Printf("atFirmware is only supported on esp01, not %s\n", tool.Chip().Name)
			os.Exit(1)
		}

		fmt.Println("Writing AT firmware...")
		if err := tool.WriteFlash(file, 0, esptool.WriteOptions{}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		color.New(color.FgGreen).Printf("AT firmware written successfully\n")
	},
}
