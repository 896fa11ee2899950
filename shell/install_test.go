package shell

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BannedPenta01/Citron-Xbox-WIP/internal/errdefs"
)

func syncSpawn(f func()) { f() }

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestCopyTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/src/prod.keys":      "new keys",
		"/src/sub/title.keys": "title",
		"/dst/prod.keys":      "old keys",
		"/dst/keep.txt":       "untouched",
	})

	require.NoError(t, CopyTree(fs, InstallRequest{Source: "/src", Destination: "/dst"}))

	assert.Equal(t, "new keys", readFile(t, fs, "/dst/prod.keys"), "existing files are overwritten")
	assert.Equal(t, "title", readFile(t, fs, "/dst/sub/title.keys"))
	assert.Equal(t, "untouched", readFile(t, fs, "/dst/keep.txt"))
}

func TestCopyTreeCreatesDestination(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"/src/a.nca": "a"})

	require.NoError(t, CopyTree(fs, InstallRequest{Source: "/src", Destination: "/nand/system/Contents/registered"}))
	assert.Equal(t, "a", readFile(t, fs, "/nand/system/Contents/registered/a.nca"))
}

func TestCopyTreeExtensionFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/src/update.NSP":   "nsp",
		"/src/deep/dlc.nsp": "dlc",
		"/src/other.xci":    "xci",
		"/src/readme.txt":   "txt",
	})

	req := InstallRequest{Source: "/src", Destination: "/dst", Extensions: []string{".nsp"}}
	require.NoError(t, CopyTree(fs, req))

	assert.Equal(t, "nsp", readFile(t, fs, "/dst/update.NSP"))
	assert.Equal(t, "dlc", readFile(t, fs, "/dst/deep/dlc.nsp"))
	for _, skipped := range []string{"/dst/other.xci", "/dst/readme.txt"} {
		exists, _ := afero.Exists(fs, skipped)
		assert.False(t, exists, skipped)
	}
}

func TestCopyTreeSourceErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"/file": "x"})

	assert.Error(t, CopyTree(fs, InstallRequest{Source: "/missing", Destination: "/dst"}))
	assert.Error(t, CopyTree(fs, InstallRequest{Source: "/file", Destination: "/dst"}))
}

func TestInstallWorkerSuccess(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"/src/prod.keys": "k"})
	w := NewInstallWorker(fs, syncSpawn)

	assert.Equal(t, InstallIdle, w.Job().State)
	assert.Empty(t, w.Status())

	req := InstallRequest{Source: "/src", Destination: "/user/keys"}
	require.True(t, w.RequestInstall(req))

	assert.False(t, w.Busy())
	assert.Equal(t, StatusDone, w.Status())
	job := w.Job()
	assert.Equal(t, InstallDone, job.State)
	assert.Equal(t, req, job.InstallRequest)
	assert.NoError(t, job.Err)
	assert.Equal(t, "k", readFile(t, fs, "/user/keys/prod.keys"))

	w.Acknowledge()
	assert.Equal(t, InstallIdle, w.Job().State)
	assert.Empty(t, w.Status())
}

func TestInstallWorkerFailure(t *testing.T) {
	w := NewInstallWorker(afero.NewMemMapFs(), syncSpawn)

	require.True(t, w.RequestInstall(InstallRequest{Source: "/missing", Destination: "/dst"}))

	assert.False(t, w.Busy())
	assert.True(t, strings.HasPrefix(w.Status(), "Error: "), w.Status())
	job := w.Job()
	assert.Equal(t, InstallFailed, job.State)
	assert.True(t, errdefs.IsType(job.Err, errdefs.ErrTypeInstallFailed))

	w.Acknowledge()
	assert.Equal(t, InstallIdle, w.Job().State)
}

func TestInstallWorkerRejectsConcurrentRequest(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	w := NewInstallWorker(afero.NewMemMapFs(), nil)
	w.copy = func(afero.Fs, InstallRequest) error {
		close(started)
		<-release
		return nil
	}

	first := InstallRequest{Source: "/a", Destination: "/dst-a"}
	require.True(t, w.RequestInstall(first))
	<-started

	before := w.Job()
	assert.True(t, w.Busy())
	assert.Equal(t, StatusCopying, w.Status())

	assert.False(t, w.RequestInstall(InstallRequest{Source: "/b", Destination: "/dst-b"}))
	assert.Equal(t, before, w.Job(), "job unchanged by rejected request")
	assert.Equal(t, InstallRunning, w.Job().State)

	w.Acknowledge()
	assert.Equal(t, InstallRunning, w.Job().State, "running job cannot be acknowledged")

	close(release)
	require.Eventually(t, func() bool { return !w.Busy() }, time.Second, time.Millisecond)
	assert.Equal(t, InstallDone, w.Job().State)
	assert.Equal(t, first, w.Job().InstallRequest)
	assert.Equal(t, StatusDone, w.Status(), "status published before busy clears")
}

func TestInstallWorkerStatusDetail(t *testing.T) {
	w := NewInstallWorker(afero.NewMemMapFs(), syncSpawn)
	w.copy = func(afero.Fs, InstallRequest) error { return errors.New("disk full") }

	w.RequestInstall(InstallRequest{Source: "/a", Destination: "/b"})
	assert.Equal(t, "Error: disk full", w.Status())
}

func TestInstallStateString(t *testing.T) {
	assert.Equal(t, "Running", InstallRunning.String())
	assert.Equal(t, "Unknown", InstallState(9).String())
}
