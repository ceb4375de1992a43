package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadTextFile(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	content := []byte("版本：V1\n一段脚本正文")
	require.NoError(t, fs.SaveTextFile("projects/p1", "script_V1.txt", content))

	loaded, err := fs.LoadTextFile("projects/p1", "script_V1.txt")
	require.NoError(t, err)
	assert.Equal(t, content, loaded)
}

func TestSaveAndLoadJSONFile(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	type payload struct {
		Title   string `json:"title"`
		Version int    `json:"version"`
	}

	require.NoError(t, fs.SaveJSONFile("projects/p1", "project.json", payload{Title: "春日广告", Version: 2}))

	var loaded payload
	require.NoError(t, fs.LoadJSONFile("projects/p1", "project.json", &loaded))
	assert.Equal(t, payload{Title: "春日广告", Version: 2}, loaded)
}

func TestFileExists(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	assert.False(t, fs.FileExists("projects/p1", "project.json"))

	require.NoError(t, fs.SaveTextFile("projects/p1", "project.json", []byte("{}")))
	assert.True(t, fs.FileExists("projects/p1", "project.json"))
}

func TestListDirs(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	// 目录不存在时返回空列表而不是错误
	dirs, err := fs.ListDirs("projects")
	require.NoError(t, err)
	assert.Empty(t, dirs)

	require.NoError(t, fs.SaveTextFile("projects/b", "x.txt", []byte("b")))
	require.NoError(t, fs.SaveTextFile("projects/a", "x.txt", []byte("a")))

	dirs, err = fs.ListDirs("projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dirs)
}

func TestDeleteDir(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveTextFile("projects/p1", "x.txt", []byte("x")))
	require.NoError(t, fs.DeleteDir("projects/p1"))
	assert.False(t, fs.FileExists("projects/p1", "x.txt"))
}

func TestSaveOverwritesAtomically(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveTextFile("projects/p1", "script_V1.txt", []byte("旧内容")))
	require.NoError(t, fs.SaveTextFile("projects/p1", "script_V1.txt", []byte("新内容")))

	loaded, err := fs.LoadTextFile("projects/p1", "script_V1.txt")
	require.NoError(t, err)
	assert.Equal(t, "新内容", string(loaded))
}
