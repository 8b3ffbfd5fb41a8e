package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	backupCmd.Flags().StringVarP(&file, "file", "f", "", "output file for the backup")
	backupCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the entire flash to a binary file",
	Long:  "Reads the full declared flash capacity into a local file, suitable for restoring later with the write command",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		fmt.Printf("Creating firmware backup: %s\n", file)
		if err := tool.ReadFlash(0, tool.Capacity(), file); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).PrintfFunc()
		if fi, err := os.Stat(file); err == nil {
			green("Backup created successfully: %d bytes\n", fi.Size())
		} else {
			green("Backup created successfully\n")
		}
	},
}
