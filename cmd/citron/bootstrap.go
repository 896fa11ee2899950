package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/afero"

	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/coreproc"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/storage"
	"github.com/BannedPenta01/Citron-Xbox-WIP/shell/style"
)

// bootOptions carries command line overrides. Nil pointers leave the
// frontend.json value alone.
type bootOptions struct {
	DataDir       string
	Core          string
	Fullscreen    *bool
	NativeDialogs *bool
}

// environment is everything resolved before a front-end starts
type environment struct {
	fs       afero.Fs
	system   emucore.SystemInfo
	userDir  string
	frontend *storage.FrontendConfig
	settings *storage.Settings
	roots    shell.RootPlan
}

func bootstrap(fs afero.Fs, opts bootOptions) (*environment, error) {
	system := emucore.DefaultSystemInfo()
	storage.Init(system.DataDirName)

	userDir, err := storage.UserDir(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	// The menu still runs on defaults when nothing can be written
	if err := storage.EnsureDirectories(fs, userDir); err != nil {
		log.Warnf("Failed to create data directory: %v", err)
	}
	if err := storage.PublishEnvironment(userDir); err != nil {
		log.Warnf("Failed to publish data directory: %v", err)
	}
	log.Debugf("Data directory: %s", userDir)

	frontendPath := storage.FrontendConfigPath(userDir)
	if err := storage.CreateFrontendConfigIfMissing(fs, frontendPath); err != nil {
		log.Warnf("Failed to create %s: %v", frontendPath, err)
	}
	frontend, err := storage.LoadFrontendConfig(fs, frontendPath)
	if err != nil {
		log.Warnf("Failed to load %s, using defaults: %v", frontendPath, err)
		frontend = storage.DefaultFrontendConfig()
	}
	if problems := storage.ValidateFrontendConfig(frontend); len(problems) > 0 {
		log.Warnf("Corrected frontend config: %s", strings.Join(problems, ", "))
		storage.CorrectFrontendConfig(frontend)
	}

	style.ApplyThemeByName(frontend.Theme)

	if opts.Core != "" {
		frontend.Core.Executable = opts.Core
	}
	if opts.Fullscreen != nil {
		frontend.Window.Fullscreen = *opts.Fullscreen
	}
	if opts.NativeDialogs != nil {
		frontend.NativeDialogs = *opts.NativeDialogs
	}

	settings, err := storage.LoadSettings(fs, storage.ConfigPath(userDir))
	if err != nil {
		log.Warnf("Using default settings: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Debugf("No home directory: %v", err)
	}

	return &environment{
		fs:       fs,
		system:   system,
		userDir:  userDir,
		frontend: frontend,
		settings: settings,
		roots:    shell.DefaultRootPlan(runtime.GOOS, home),
	}, nil
}

// core builds the process-backed core, or nil when none is configured
func (env *environment) core() emucore.Core {
	c := env.frontend.Core
	if c.Executable == "" {
		return nil
	}
	return coreproc.New(coreproc.Config{
		Executable:       c.Executable,
		Args:             c.Args,
		MemoryLimitBytes: uint64(c.MemoryLimitMB) << 20,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Fs:               env.fs,
	})
}

func (env *environment) session(picker shell.FolderPicker, notifiers ...shell.Notifier) *shell.Session {
	return shell.NewSession(shell.Options{
		Fs:        env.fs,
		UserDir:   env.userDir,
		Settings:  env.settings,
		System:    env.system,
		Roots:     env.roots,
		Core:      env.core(),
		Picker:    picker,
		Notifiers: notifiers,
	})
}

// scan collects the roots and titles the library would show
func (env *environment) scan() ([]string, []shell.Title) {
	roots := env.roots.Collect(env.fs, env.settings.SearchRoots())
	idx := shell.NewLibraryIndex(env.fs, env.system.Formats)
	idx.Rescan(roots)
	return roots, idx.Titles()
}

// editRoot adds or removes a registered search root and saves config.ini
// when something changed
func (env *environment) editRoot(dir string, add bool) (bool, error) {
	var changed bool
	if add {
		if ok, _ := afero.IsDir(env.fs, dir); !ok {
			return false, fmt.Errorf("%s is not a directory", dir)
		}
		changed = env.settings.AddSearchRoot(dir)
	} else {
		changed = env.settings.RemoveSearchRoot(dir)
	}
	if !changed {
		return false, nil
	}

	if err := storage.SaveSettings(env.fs, storage.ConfigPath(env.userDir), env.settings); err != nil {
		return false, errdefs.Wrap(errdefs.ErrTypePersistence, "failed to save settings", err)
	}
	return true, nil
}
