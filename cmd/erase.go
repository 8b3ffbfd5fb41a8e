package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func init() {
	eraseCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "erase without asking for confirmation")
	rootCmd.AddCommand(eraseCmd)
}

var assumeYes bool

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Erase the entire flash memory",
	Long:  "Erases the entire flash memory, including any stored firmware, filesystem and calibration data",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		if !assumeYes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Erase the entire flash on %s", port),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Erase cancelled")
				os.Exit(1)
			}
		}

		fmt.Println("Erasing flash memory...")
		if err := tool.EraseFlash(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		color.New(color.FgGreen).Printf("Flash memory erased successfully\n")
	},
}
