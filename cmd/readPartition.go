package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	readPartitionCmd.Flags().StringVar(&partition, "partition", "", "partition name (e.g. bootloader, app, nvs, spiffs)")
	readPartitionCmd.Flags().StringVarP(&file, "file", "f", "", "output file for the partition contents")
	readPartitionCmd.MarkFlagRequired("partition")
	readPartitionCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(readPartitionCmd)
}

var partition string

var readPartitionCmd = &cobra.Command{
	Use:   "readPartition",
	Short: "Read a named partition to a binary file",
	Long:  "Reads one of the chip's fixed, well-known partitions into a local file. Only ESP32 has a fixed partition layout.",
	Run: func(cmd *cobra.Command, args []string) {
		connectTool()

		fmt.Printf("Reading %s partition...\n", partition)
		if err := tool.ReadPartition(partition, file); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		color.New(color.FgGreen).Printf("Partition %s read to %s\n", partition, file)
	},
}
