package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	verifyCmd.Flags().StringVarP(&file, "file", "f", "", "firmware file to verify against")
	verifyCmd.Flags().StringVarP(&address, "address", "a", "0x00000", "flash address the firmware was written to (hex)")
	verifyCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify flash contents against a firmware file",
	Long: "Reads the flashed region back and compares it byte for byte against the\n" +
		"source firmware file",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		fmt.Printf("Verifying firmware: %s\n", file)
		if err := tool.Verify(file, mustParseHex(address)); err != nil {
			color.New(color.FgRed).Printf("Verification failed\n")
			fmt.Println(err)
			os.Exit(1)
		}
		color.New(color.FgGreen).Printf("Verification successful - firmware matches\n")
	},
}
