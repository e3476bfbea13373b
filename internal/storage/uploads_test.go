package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("receipt", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["receipt"][0]
}

func TestSaveReceipt(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	content := []byte("fake image bytes")
	url, err := store.SaveReceipt(fileHeader(t, "proof.PNG", content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/receipts/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be lowercased: %s", url)

	onDisk := filepath.Join(store.BaseDir(), "receipts", filepath.Base(url))
	got, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveReceiptUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.SaveReceipt(fileHeader(t, "proof.jpg", []byte("a")))
	require.NoError(t, err)
	second, err := store.SaveReceipt(fileHeader(t, "proof.jpg", []byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSaveReceiptRejectsUnsupportedTypes(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"receipt.gif", "receipt.exe", "receipt"} {
		_, err := store.SaveReceipt(fileHeader(t, name, []byte("x")))
		assert.Error(t, err, name)
	}
}

func TestSaveReceiptRejectsOversizedFiles(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := fileHeader(t, "big.pdf", []byte("x"))
	fh.Size = MaxUploadSize + 1

	_, err = store.SaveReceipt(fh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
