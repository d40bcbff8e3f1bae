package main

import (
	"fmt"
	"os"

	"github.com/n-ulricksen/invaders-emulator/invaders"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
)

// Command line flags
var (
	flagDebug   bool
	flagLogging bool
	flagScale   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "invaders-emulator <rom>",
		Short: "Space Invaders arcade cabinet emulator (Intel 8080)",
		Long: "Emulates the 1978 Space Invaders cabinet. The ROM argument is either a\n" +
			"single concatenated image, or a directory holding the four-part set\n" +
			"(invaders.h/.g/.f/.e).",
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Starting Space Invaders...")
			emulator := invaders.NewBus(flagDebug, flagLogging, flagScale)
			emulator.Load(args[0])

			pixelgl.Run(emulator.Run)
		},
	}

	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "enable debug panel")
	rootCmd.Flags().BoolVarP(&flagLogging, "log", "l", false, "enable CPU trace logging")
	rootCmd.Flags().Float64VarP(&flagScale, "scale", "s", 3, "window scale factor")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
