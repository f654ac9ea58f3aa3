package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDir(t *testing.T) {
	tempDir := t.TempDir()
	dirPath := filepath.Join(tempDir, "testdir")

	require.NoError(t, CreateDir(dirPath))

	info, err := os.Stat(dirPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Creating a directory that already exists fails
	assert.ErrorIs(t, CreateDir(dirPath), os.ErrExist)

	// Parents are not created
	assert.Error(t, CreateDir(filepath.Join(tempDir, "a", "b")))
}

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "source.sh")
	content := []byte("echo hi")
	require.NoError(t, os.WriteFile(srcPath, content, 0755))

	dstPath := filepath.Join(tempDir, "dest.sh")
	require.NoError(t, CopyFileOrDir(srcPath, dstPath))

	dstContent, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, content, dstContent)

	info, err := os.Stat(dstPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// Never overwrites an existing file
	assert.Error(t, CopyFileOrDir(srcPath, dstPath))
}

func TestCopyDir(t *testing.T) {
	tempDir := t.TempDir()

	srcDir := filepath.Join(tempDir, "srcdir")
	os.Mkdir(srcDir, 0755)
	os.WriteFile(filepath.Join(srcDir, "file1.txt"), []byte("content1"), 0644)

	subdir := filepath.Join(srcDir, "subdir")
	os.Mkdir(subdir, 0755)
	os.WriteFile(filepath.Join(subdir, "file2.txt"), []byte("content2"), 0644)
	require.NoError(t, os.Symlink("file2.txt", filepath.Join(subdir, "link")))

	dstDir := filepath.Join(tempDir, "dstdir")
	require.NoError(t, CopyFileOrDir(srcDir, dstDir))

	data, err := os.ReadFile(filepath.Join(dstDir, "file1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content1", string(data))

	data, err = os.ReadFile(filepath.Join(dstDir, "subdir", "file2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content2", string(data))

	target, err := os.Readlink(filepath.Join(dstDir, "subdir", "link"))
	require.NoError(t, err)
	assert.Equal(t, "file2.txt", target)
}

func TestCopyDirIntoItself(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	os.Mkdir(srcDir, 0755)

	err := CopyFileOrDir(srcDir, filepath.Join(srcDir, "copy"))
	assert.ErrorIs(t, err, ErrIntoSelf)

	_, statErr := os.Stat(filepath.Join(srcDir, "copy"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemove(t *testing.T) {
	tempDir := t.TempDir()
	tree := filepath.Join(tempDir, "tree")
	os.MkdirAll(filepath.Join(tree, "deep", "er"), 0755)
	os.WriteFile(filepath.Join(tree, "deep", "f"), nil, 0644)

	require.NoError(t, Remove(tree))
	_, err := os.Stat(tree)
	assert.True(t, os.IsNotExist(err))

	// Removing something that is already gone is reported
	assert.ErrorIs(t, Remove(tree), os.ErrNotExist)
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		path, dir string
		want      bool
	}{
		{"/a/b", "/a/b", true},
		{"/a/b/c", "/a/b", true},
		{"/a/bc", "/a/b", false},
		{"/a", "/a/b", false},
		{"/x/..b", "/x", true},
	}
	for _, tt := range tests {
		t.Run(tt.path+" in "+tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithin(tt.path, tt.dir))
		})
	}
}

func TestFreeName(t *testing.T) {
	taken := map[string]bool{"a.txt": true, "_a.txt": true}
	assert.Equal(t, "__a.txt", FreeName("a.txt", taken))
	assert.Equal(t, "b.txt", FreeName("b.txt", taken))
}
