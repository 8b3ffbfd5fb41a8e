package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Pandiyarajk/espflash/pkg/esptool"
)

func init() {
	writeCmd.Flags().StringVarP(&file, "file", "f", "", "firmware file to write")
	writeCmd.Flags().StringVarP(&address, "address", "a", "0x00000", "flash address (hex)")
	writeCmd.Flags().BoolVar(&verify, "verify", false, "verify the written firmware")
	writeCmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip verification")
	writeCmd.Flags().BoolVar(&eraseAll, "erase-all", false, "erase the entire flash before writing")
	writeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(writeCmd)
}

var (
	verify   bool
	noVerify bool
	eraseAll bool
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a firmware image to flash",
	Long: "Writes a firmware binary to flash at the given address. The file size is\n" +
		"checked against the declared flash capacity before esptool is invoked.",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		if fi, err := os.Stat(file); err == nil {
			fmt.Printf("Firmware file size: %d bytes\n", fi.Size())
		}

		opts := esptool.WriteOptions{
			Verify:   verify && !noVerify,
			EraseAll: eraseAll,
		}

		fmt.Printf("Writing firmware %s to flash...\n", file)
		if err := tool.WriteFlash(file, mustParseHex(address), opts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).PrintfFunc()
		green("Firmware written successfully\n")
		if opts.Verify {
			green("Verification completed\n")
		}
	},
}
