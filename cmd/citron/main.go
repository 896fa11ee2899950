package main

import (
	"github.com/spf13/cobra"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "User data directory (default: per-OS application data)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagCore, "core", "", "Emulator core executable (overrides frontend.json)")

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().BoolVar(&flagFullscreen, "fullscreen", true, "Start fullscreen (overrides frontend.json)")
		c.Flags().BoolVar(&flagNativeDialogs, "native-dialogs", false, "Also show errors in native dialogs (overrides frontend.json)")
	}

	configCmd.AddCommand(configAddRootCmd, configRemoveRootCmd)
	rootCmd.AddCommand(versionCmd, runCmd, tuiCmd, scanCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
