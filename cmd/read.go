package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	readCmd.Flags().StringVarP(&file, "file", "f", "", "output file for the flash contents")
	readCmd.Flags().StringVarP(&address, "address", "a", "0x00000", "start address (hex)")
	readCmd.Flags().StringVarP(&sizeStr, "size", "s", "", "size to read (hex), full flash if not set")
	readCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(readCmd)
}

// File, address and size flags shared by the read/write style commands
var (
	file    string
	address string
	sizeStr string
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read flash memory to a binary file",
	Long:  "Reads a region of flash memory (the whole flash by default) into a local binary file",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		addr := mustParseHex(address)
		size := tool.Capacity() - addr
		if sizeStr != "" {
			size = mustParseHex(sizeStr)
		}

		fmt.Printf("Reading flash memory to %s...\n", file)
		if err := tool.ReadFlash(addr, size, file); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).PrintfFunc()
		if fi, err := os.Stat(file); err == nil {
			green("Read %d bytes to %s\n", fi.Size(), file)
		} else {
			green("Read complete\n")
		}
	},
}
