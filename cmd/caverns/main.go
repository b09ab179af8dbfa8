// Package main is the entry point for the caverns console game
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "caverns",
	Short: "A small console adventure",
	Long:  `Caverns is a small console adventure: name a hero, pick a road, and maybe walk into the wrong cave.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log game internals to stderr")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestiaryCmd)
}

// configureLogging keeps the story on stdout and the internals on stderr,
// and hides the internals entirely unless asked for.
func configureLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
