package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Pandiyarajk/espflash/pkg/esptool"
)

func init() {
	writeMultipleCmd.Flags().StringVar(&bootloaderFile, "bootloader", "", "bootloader image")
	writeMultipleCmd.Flags().StringVar(&bootloaderAddr, "bootloader-addr", "", "bootloader address (hex), chip default if not set")
	writeMultipleCmd.Flags().StringVar(&partTableFile, "partition-table", "", "partition table image")
	writeMultipleCmd.Flags().StringVar(&partTableAddr, "partition-table-addr", "", "partition table address (hex), chip default if not set")
	writeMultipleCmd.Flags().StringVar(&appFile, "app", "", "application image")
	writeMultipleCmd.Flags().StringVar(&appAddr, "app-addr", "", "application address (hex), chip default if not set")
	writeMultipleCmd.Flags().StringVar(&spiffsFile, "spiffs", "", "SPIFFS image")
	writeMultipleCmd.Flags().StringVar(&spiffsAddr, "spiffs-addr", "", "SPIFFS address (hex), chip default if not set")
	rootCmd.AddCommand(writeMultipleCmd)
}

var (
	bootloaderFile, bootloaderAddr string
	partTableFile, partTableAddr   string
	appFile, appAddr               string
	spiffsFile, spiffsAddr         string
)

var writeMultipleCmd = &cobra.Command{
	Use:   "writeMultiple",
	Short: "Write several firmware images in one pass",
	Long: "Writes bootloader, partition table, application and SPIFFS images in a\n" +
		"single esptool invocation. Addresses default to the chip's standard layout.",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()
		chip := tool.Chip()

		var images []esptool.Image
		add := func(path, addrFlag string, def uint32) {
			if path == "" {
				return
			}
			addr := int64(def)
			if addrFlag != "" {
				addr = mustParseHex(addrFlag)
			}
			images = append(images, esptool.Image{Addr: addr, Path: path})
		}
		add(bootloaderFile, bootloaderAddr, chip.BootloaderAddr)
		add(partTableFile, partTableAddr, chip.PartitionTableAddr)
		add(appFile, appAddr, chip.AppAddr)
		add(spiffsFile, spiffsAddr, chip.SpiffsAddr)

		if len(images) == 0 {
			fmt.Println("at least one of --bootloader, --partition-table, --app, --spiffs is required")
			os.Exit(1)
		}

		fmt.Printf("Writing %d firmware images...\n", len(images))
		if err := tool.WriteRegions(images); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		color.New(color.FgGreen).Printf("All images written successfully\n")
	},
}
