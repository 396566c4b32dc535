package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFilenamePreservesExtension(t *testing.T) {
	name := GenerateFilename("Q3 report.PDF")
	assert.True(t, strings.HasSuffix(name, ".PDF"))
	assert.NotContains(t, name, " ")

	other := GenerateFilename("Q3 report.PDF")
	assert.NotEqual(t, name, other)
}

func TestGenerateFilenameNoExtension(t *testing.T) {
	name := GenerateFilename("recording")
	assert.NotContains(t, name, ".")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "audio/abc.webm", Key(KindAudio, "abc.webm"))
	assert.Equal(t, "documents/abc.pdf", Key(KindDocument, "abc.pdf"))
}

func TestLocalStorageSaveOpenDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key := Key(KindAudio, "abc.webm")
	written, err := store.SaveStream(key, bytes.NewBufferString("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), written)

	file, err := store.Open(key)
	require.NoError(t, err)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "hello", string(content))

	require.NoError(t, store.Delete(key))
	_, err = os.Stat(store.Path(key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingIsNotError(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(Key(KindDocument, "never-written.pdf")))
}

func TestLocalStorageCreatesKindDirLazily(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, KindDocument))
	require.True(t, os.IsNotExist(err))

	_, err = store.SaveStream(Key(KindDocument, "abc.pdf"), bytes.NewBufferString("doc"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(base, KindDocument))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
