package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marearts/xcolor"
)

var gpuInfoCmd = &cobra.Command{
	Use:   "gpu-info",
	Short: "Show the acceleration device this build can use",
	Run: func(cmd *cobra.Command, args []string) {
		info := xcolor.GPUInfo()
		fmt.Printf("GPU available: %v\n", info.Available)
		fmt.Printf("Backend:       %s\n", info.Backend)
		fmt.Printf("Device:        %s\n", info.Device)
		fmt.Printf("Workers:       %d\n", info.Workers)
	},
}

func init() {
	rootCmd.AddCommand(gpuInfoCmd)
}
