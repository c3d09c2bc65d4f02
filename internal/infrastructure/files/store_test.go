package files

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndOpen(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("abc123", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "prescriptions/abc123.pdf", key)

	r, err := store.Open(key)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestStore_ExtensionFollowsMIMEType(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("x", "image/jpg", strings.NewReader("j"))
	require.NoError(t, err)
	assert.Equal(t, "prescriptions/x.jpg", key)

	key, err = store.Save("y", "image/png", strings.NewReader("p"))
	require.NoError(t, err)
	assert.Equal(t, "prescriptions/y.png", key)
}

func TestStore_UnsupportedMIMEType(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("x", "text/plain", strings.NewReader("t"))
	assert.Error(t, err)
}

func TestStore_GeneratesIDWhenEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("", "image/png", strings.NewReader("p"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "prescriptions/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
}

func TestStore_RejectsTraversalKeys(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("../etc/passwd")
	assert.Error(t, err)

	assert.Error(t, store.Remove("../../x"))
}

func TestStore_Remove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("z", "image/png", strings.NewReader("p"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(key))

	_, err = store.Open(key)
	assert.Error(t, err)
}
