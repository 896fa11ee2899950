package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/desktop"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/tui"
)

var (
	flagDataDir       string
	flagLogLevel      string
	flagCore          string
	flagFullscreen    bool
	flagNativeDialogs bool
)

var rootCmd = &cobra.Command{
	Use:   "citron",
	Short: "Citron front-end",
	Long:  "Controller-driven front-end for the Citron emulator.\n\nWith no subcommand the graphical library is started.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !log.SetLevel(flagLogLevel) {
			return fmt.Errorf("unknown log level %q", flagLogLevel)
		}
		return nil
	},
	SilenceUsage: true,
	RunE:         runGraphical,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the graphical front-end",
	RunE:  runGraphical,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal front-end",
	RunE:  runTerminal,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the search roots and print the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap(afero.NewOsFs(), optionsFromFlags(cmd))
		if err != nil {
			return err
		}
		roots, titles := env.scan()
		fmt.Fprintln(cmd.OutOrStdout(), renderLibrary(roots, titles))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved settings, search roots and prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap(afero.NewOsFs(), optionsFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderConfig(env))
		return nil
	},
}

var configAddRootCmd = &cobra.Command{
	Use:   "add-root <dir>",
	Short: "Register a library search root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRoots(cmd, args[0], true)
	},
}

var configRemoveRootCmd = &cobra.Command{
	Use:   "remove-root <dir>",
	Short: "Unregister a library search root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRoots(cmd, args[0], false)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Citron front-end %s\n", Version)
	},
}

// optionsFromFlags applies only the flags the user actually set so
// frontend.json keeps precedence otherwise
func optionsFromFlags(cmd *cobra.Command) bootOptions {
	opts := bootOptions{DataDir: flagDataDir, Core: flagCore}
	if f := cmd.Flags().Lookup("fullscreen"); f != nil && f.Changed {
		opts.Fullscreen = &flagFullscreen
	}
	if f := cmd.Flags().Lookup("native-dialogs"); f != nil && f.Changed {
		opts.NativeDialogs = &flagNativeDialogs
	}
	return opts
}

func runGraphical(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	env, err := bootstrap(fs, optionsFromFlags(cmd))
	if err != nil {
		return err
	}

	var notifiers []shell.Notifier
	if env.frontend.NativeDialogs {
		notifiers = append(notifiers, desktop.DialogNotifier{ErrorsOnly: true})
	}
	sess := env.session(desktop.NativePicker{}, notifiers...)

	return desktop.Run(sess, desktop.Options{
		Fs:      fs,
		UserDir: env.userDir,
		Config:  env.frontend,
	})
}

func runTerminal(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	env, err := bootstrap(fs, optionsFromFlags(cmd))
	if err != nil {
		return err
	}

	// Log lines would tear the alt-screen
	logPath := filepath.Join(env.userDir, "citron-tui.log")
	f, err := fs.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)

	picker := tui.NewPicker()
	sess := env.session(picker)
	return tui.Run(sess, picker, tui.Options{Fs: fs})
}

func editRoots(cmd *cobra.Command, dir string, add bool) error {
	fs := afero.NewOsFs()
	env, err := bootstrap(fs, optionsFromFlags(cmd))
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", dir, err)
	}

	changed, err := env.editRoot(abs, add)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case add && changed:
		fmt.Fprintf(out, "Added %s\n", abs)
	case add:
		fmt.Fprintf(out, "%s is already registered\n", abs)
	case changed:
		fmt.Fprintf(out, "Removed %s\n", abs)
	default:
		fmt.Fprintf(out, "%s was not registered\n", abs)
	}
	return nil
}
