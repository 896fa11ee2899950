// Package coreproc runs an external emulator executable as the emulation
// core. Initialize and Load validate and prepare the command line; Run
// starts the child process and waits for it to exit.
package coreproc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/afero"

	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/log"
)

// Placeholders recognised in Config.Args
const (
	PlaceholderPath         = "{path}"
	PlaceholderLanguage     = "{language}"
	PlaceholderRegion       = "{region}"
	PlaceholderCustomRTC    = "{rtc}"
	PlaceholderMultiCore    = "{multicore}"
	PlaceholderMemoryLayout = "{memory_layout}"
)

// DefaultArgs passes the title path as the only argument
var DefaultArgs = []string{PlaceholderPath}

// Config describes how the core process is launched
type Config struct {
	Executable string
	Args       []string
	// Extra environment entries appended to the inherited environment
	Env []string
	// Address-space cap for the child. Zero disables it.
	MemoryLimitBytes uint64

	Stdout io.Writer
	Stderr io.Writer

	// Fs is used to check that the executable and title exist
	Fs afero.Fs
}

// Core implements emucore.Core and emucore.Closer
type Core struct {
	cfg Config

	mu          sync.Mutex
	initialized bool
	argv        []string
	proc        *os.Process

	// command builds the child process; replaced in tests
	command func(name string, args ...string) *exec.Cmd
}

// New returns a core for cfg. Nothing is started until Run.
func New(cfg Config) *Core {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if len(cfg.Args) == 0 {
		cfg.Args = DefaultArgs
	}
	return &Core{cfg: cfg, command: exec.Command}
}

// Initialize checks that the executable is present
func (c *Core) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialized = false
	c.argv = nil

	if c.cfg.Executable == "" {
		return errdefs.NewCustomError(errdefs.ErrTypeBootFailed, "no core executable configured")
	}
	info, err := c.cfg.Fs.Stat(c.cfg.Executable)
	if err != nil {
		return fmt.Errorf("core executable %s: %w", c.cfg.Executable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("core executable %s is a directory", c.cfg.Executable)
	}

	c.initialized = true
	return nil
}

// Load prepares the command line for the title at path
func (c *Core) Load(path string, params emucore.LaunchParams) emucore.ResultStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return emucore.StatusErrorNotInitialized
	}
	if _, err := c.cfg.Fs.Stat(path); err != nil {
		log.Warnf("Title not readable: %v", err)
		return emucore.StatusErrorLoader
	}

	c.argv = ExpandArgs(c.cfg.Args, path, params)
	log.Debugf("Core command: %s %s", c.cfg.Executable, strings.Join(c.argv, " "))
	return emucore.StatusSuccess
}

// Run starts the child and blocks until it exits. A loaded title is
// consumed, so the next boot starts at Initialize again.
func (c *Core) Run() error {
	c.mu.Lock()
	if c.argv == nil {
		c.mu.Unlock()
		return errdefs.NewCustomError(errdefs.ErrTypeBootFailed, "no title loaded")
	}
	cmd := c.command(c.cfg.Executable, c.argv...)
	cmd.Env = append(cmd.Environ(), c.cfg.Env...)
	cmd.Stdout = c.cfg.Stdout
	cmd.Stderr = c.cfg.Stderr
	c.argv = nil
	c.initialized = false

	if err := cmd.Start(); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("failed to start core: %w", err)
	}
	c.proc = cmd.Process
	c.mu.Unlock()

	release := func() {}
	if c.cfg.MemoryLimitBytes > 0 {
		r, err := limitMemory(cmd.Process, c.cfg.MemoryLimitBytes)
		if err != nil {
			log.Warnf("Memory limit not applied: %v", err)
		} else {
			release = r
		}
	}

	err := cmd.Wait()
	release()

	c.mu.Lock()
	c.proc = nil
	c.mu.Unlock()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("core exited with status %d", exitErr.ExitCode())
	}
	return err
}

// Close kills a child that is still running
func (c *Core) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.proc == nil {
		return nil
	}
	if err := c.proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop core: %w", err)
	}
	return nil
}

// ExpandArgs substitutes the title path and system options into args
func ExpandArgs(args []string, path string, params emucore.LaunchParams) []string {
	r := strings.NewReplacer(
		PlaceholderPath, path,
		PlaceholderLanguage, strconv.Itoa(params.Language),
		PlaceholderRegion, strconv.Itoa(params.Region),
		PlaceholderCustomRTC, boolArg(params.CustomRTC),
		PlaceholderMultiCore, boolArg(params.MultiCore),
		PlaceholderMemoryLayout, strconv.Itoa(params.MemoryLayout),
	)

	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}

func boolArg(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
