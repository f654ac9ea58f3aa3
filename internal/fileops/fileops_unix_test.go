//go:build unix

package fileops

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestCopyDirRecreatesFifo(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	require.NoError(t, os.Mkdir(srcDir, 0755))
	require.NoError(t, unix.Mkfifo(filepath.Join(srcDir, "pipe"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "after.txt"), []byte("x"), 0644))

	dstDir := filepath.Join(tempDir, "dst")
	done := make(chan error, 1)
	go func() { done <- CopyFileOrDir(srcDir, dstDir) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("copy blocked on a named pipe")
	}

	info, err := os.Lstat(filepath.Join(dstDir, "pipe"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeNamedPipe)
	assert.FileExists(t, filepath.Join(dstDir, "after.txt"))
}

func TestCopyDirReportsSocketAndCopiesTheRest(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	require.NoError(t, os.Mkdir(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("a"), 0644))

	l, err := net.Listen("unix", filepath.Join(srcDir, "sock"))
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	defer l.Close()

	dstDir := filepath.Join(tempDir, "dst")
	err = CopyFileOrDir(srcDir, dstDir)
	assert.ErrorIs(t, err, ErrSpecialFile)
	assert.FileExists(t, filepath.Join(dstDir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dstDir, "sock"))
}

func TestCopyReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}

	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	dstDir := filepath.Join(tempDir, "dst")
	require.NoError(t, os.Mkdir(srcDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "f"), []byte("f"), 0444))
	require.NoError(t, os.Chmod(srcDir, 0555))
	t.Cleanup(func() {
		os.Chmod(srcDir, 0755)
		os.Chmod(dstDir, 0755)
	})

	require.NoError(t, CopyFileOrDir(srcDir, dstDir))

	data, err := os.ReadFile(filepath.Join(dstDir, "f"))
	require.NoError(t, err)
	assert.Equal(t, "f", string(data))

	info, err := os.Stat(dstDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0555), info.Mode().Perm())
}
