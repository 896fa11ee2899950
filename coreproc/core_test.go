package coreproc

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emucore "github.com/BannedPenta01/Citron-Xbox-WIP/api"
	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
)

func memCore(t *testing.T, args ...string) *Core {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bin/citron", []byte("#!"), 0755))
	require.NoError(t, afero.WriteFile(fs, "/games/zelda.nsp", []byte("x"), 0644))
	return New(Config{Executable: "/bin/citron", Args: args, Fs: fs})
}

// helperCommand re-runs the test binary as a stand-in for the core
func helperCommand(name string, args ...string) *exec.Cmd {
	cs := append([]string{"-test.run=TestHelperProcess", "--"}, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) > 1 {
		args = args[1:]
	}
	fmt.Fprint(os.Stdout, args)
	if len(args) > 0 && args[0] == "fail" {
		os.Exit(3)
	}
	os.Exit(0)
}

func TestExpandArgs(t *testing.T) {
	params := emucore.LaunchParams{Language: 2, Region: 1, CustomRTC: true, MultiCore: false, MemoryLayout: 1}
	args := []string{"-f", "--lang={language}", "--region={region}", "--rtc={rtc}", "--mc={multicore}", "--mem={memory_layout}", "{path}"}

	got := ExpandArgs(args, "/games/zelda.nsp", params)
	assert.Equal(t, []string{"-f", "--lang=2", "--region=1", "--rtc=1", "--mc=0", "--mem=1", "/games/zelda.nsp"}, got)
	assert.Equal(t, "{path}", args[6], "template must not be modified")
}

func TestNewDefaultsArgs(t *testing.T) {
	c := New(Config{Executable: "x"})
	assert.Equal(t, DefaultArgs, c.cfg.Args)
	assert.NotNil(t, c.cfg.Fs)
}

func TestInitialize(t *testing.T) {
	t.Run("no executable", func(t *testing.T) {
		err := New(Config{Fs: afero.NewMemMapFs()}).Initialize()
		assert.True(t, errdefs.IsType(err, errdefs.ErrTypeBootFailed))
	})

	t.Run("missing executable", func(t *testing.T) {
		err := New(Config{Executable: "/nope", Fs: afero.NewMemMapFs()}).Initialize()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/bin/citron", 0755))
		assert.Error(t, New(Config{Executable: "/bin/citron", Fs: fs}).Initialize())
	})

	t.Run("present", func(t *testing.T) {
		assert.NoError(t, memCore(t).Initialize())
	})
}

func TestLoadStatuses(t *testing.T) {
	c := memCore(t)
	assert.Equal(t, emucore.StatusErrorNotInitialized, c.Load("/games/zelda.nsp", emucore.LaunchParams{}))

	require.NoError(t, c.Initialize())
	assert.Equal(t, emucore.StatusErrorLoader, c.Load("/games/missing.nsp", emucore.LaunchParams{}))
	assert.Nil(t, c.argv)

	assert.Equal(t, emucore.StatusSuccess, c.Load("/games/zelda.nsp", emucore.LaunchParams{}))
	assert.Equal(t, []string{"/games/zelda.nsp"}, c.argv)
}

func TestRunWithoutLoad(t *testing.T) {
	err := memCore(t).Run()
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeBootFailed))
}

func TestRunStartsChild(t *testing.T) {
	var out bytes.Buffer
	c := memCore(t, "{path}")
	c.cfg.Stdout = &out
	c.command = helperCommand

	require.NoError(t, c.Initialize())
	require.Equal(t, emucore.StatusSuccess, c.Load("/games/zelda.nsp", emucore.LaunchParams{}))
	require.NoError(t, c.Run())
	assert.Equal(t, "[/games/zelda.nsp]", out.String())

	// The loaded title is consumed by Run
	assert.Equal(t, emucore.StatusErrorNotInitialized, c.Load("/games/zelda.nsp", emucore.LaunchParams{}))
	assert.NoError(t, c.Close())
}

func TestRunReportsExitStatus(t *testing.T) {
	c := memCore(t, "fail")
	c.command = helperCommand

	require.NoError(t, c.Initialize())
	require.Equal(t, emucore.StatusSuccess, c.Load("/games/zelda.nsp", emucore.LaunchParams{}))
	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 3")
}
