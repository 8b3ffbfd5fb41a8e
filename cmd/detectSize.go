package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detectSizeCmd)
}

var detectSizeCmd = &cobra.Command{
	Use:   "detectSize",
	Short: "Detect the flash size of the connected chip",
	Long:  "Runs an esptool flash-id query and reports the flash size it detects on the connected chip",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		size, err := tool.DetectFlashSize()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Detected flash size: %s\n", size)
	},
}
