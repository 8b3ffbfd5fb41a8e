package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/google/go-github/github"
	"github.com/spf13/cobra"

	"github.com/Pandiyarajk/espflash/pkg/esptool"
)

func init() {
	installEsptoolCmd.Flags().BoolVar(&checkOnly, "check", false, "only report the installed and latest versions, do not install")
	rootCmd.AddCommand(installEsptoolCmd)
}

var checkOnly bool

var installEsptoolCmd = &cobra.Command{
	Use:   "installEsptool",
	Short: "Install esptool or check for a newer release",
	Long: "Checks whether esptool is available, installs it through pip when it is\n" +
		"missing, and reports the latest release published on GitHub",
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).PrintfFunc()

		v, err := esptool.Version(esptoolPath)
		switch {
		case err == nil:
			green("esptool is installed: %s\n", v)
		case checkOnly:
			fmt.Println(err)
			os.Exit(1)
		default:
			fmt.Println("esptool not found, installing with pip...")
			if !installViaPip() {
				fmt.Println("Failed to install esptool. Install it manually with \"pip install esptool\"")
				os.Exit(1)
			}
			if v, err := esptool.Version(esptoolPath); err == nil {
				green("esptool installed: %s\n", v)
			}
		}

		// Report the latest upstream release so the user can decide
		// whether to upgrade.
		client := github.NewClient(nil)
		release, _, err := client.Repositories.GetLatestRelease(context.Background(), "espressif", "esptool")
		if err != nil {
			fmt.Printf("Unable to fetch the latest esptool release: %v\n", err)
			return
		}
		fmt.Printf("Latest esptool release: %s\n", release.GetTagName())
	},
}

// installViaPip tries pip3 first, then pip, mirroring how esptool's own
// install instructions are written.
func installViaPip() bool {
	for _, pip := range []string{"pip3", "pip"} {
		if _, err := exec.LookPath(pip); err != nil {
			continue
		}
		fmt.Printf("Running %s install esptool\n", pip)
		cmd := exec.Command(pip, "install", "esptool")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err == nil {
			return true
		}
	}
	return false
}
