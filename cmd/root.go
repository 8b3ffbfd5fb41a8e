package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Pandiyarajk/espflash/pkg/esptool"
)

var tool *esptool.Tool

// Session parameters shared by every subcommand
var (
	port        string
	baud        int
	chipName    string
	flashSize   string
	esptoolPath string
	esptoolArgs string
	retries     int
	noProgress  bool
	verbose     bool
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "serial port (e.g. COM3, /dev/ttyUSB0)")
	rootCmd.PersistentFlags().IntVarP(&baud, "baud", "b", esptool.DefaultBaud, "baud rate")
	rootCmd.PersistentFlags().StringVarP(&chipName, "chip", "c", "esp32", "chip family (esp01, esp8266, esp32)")
	rootCmd.PersistentFlags().StringVar(&flashSize, "flash-size", "", "flash size (1MB, 2MB, 4MB, 8MB, 16MB), chip default if not set")
	rootCmd.PersistentFlags().StringVar(&esptoolPath, "esptool", esptool.DefaultPath, "path to the esptool executable")
	rootCmd.PersistentFlags().StringVar(&esptoolArgs, "esptool-args", "", "extra arguments passed to every esptool invocation")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 3, "retry budget for transient serial failures")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable esptool progress output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initLogging() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// connectTool builds the esptool session from the persistent flags. Device
// commands call it first; ports, version and installEsptool work without a
// port.
func connectTool() {
	if port == "" {
		logrus.Fatal("--port is required")
	}
	chip, err := esptool.ChipByName(chipName)
	if err != nil {
		logrus.Fatal(err)
	}
	extra, err := shellwords.Parse(esptoolArgs)
	if err != nil {
		logrus.Fatalf("invalid --esptool-args: %v", err)
	}

	tool, err = esptool.New(esptool.Config{
		Port:       port,
		Baud:       baud,
		Chip:       chip,
		FlashSize:  flashSize,
		Path:       esptoolPath,
		ExtraArgs:  extra,
		Retries:    retries,
		NoProgress: noProgress,
	})
	if err != nil {
		logrus.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "espflash",
	Short: "Flash, read and verify ESP01/ESP8266/ESP32 firmware with esptool",
	Long: "espflash wraps the esptool utility with a read/write/erase/backup/verify\n" +
		"workflow for the ESP01, ESP8266 and ESP32 chip families. esptool must be\n" +
		"installed separately (see the installEsptool command).",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// mustParseHex parses a hex address or size, with or without a 0x prefix.
func mustParseHex(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 64)
	if err != nil {
		fmt.Printf("invalid hex value %q\n", s)
		os.Exit(1)
	}
	return v
}
