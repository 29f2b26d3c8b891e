package local

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/shared/storage/object"
)

func TestSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	payload := "%PDF-1.7 fake resume"
	stored, err := store.Save(ctx, "guest-1", "cv.pdf", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), stored.Size)
	assert.Equal(t, "application/pdf", stored.ContentType)
	assert.True(t, strings.HasPrefix(stored.Key, object.OwnerKey("guest-1")+"/"))

	rc, err := store.Open(ctx, stored.Key)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestSaveWithKeyOverwrites(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	_, err := store.SaveWithKey(ctx, "a/b.txt", "text/plain", strings.NewReader("first"))
	require.NoError(t, err)
	n, err := store.SaveWithKey(ctx, "a/b.txt", "text/plain", strings.NewReader("2nd"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rc, err := store.Open(ctx, "a/b.txt")
	require.NoError(t, err)
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	assert.Equal(t, "2nd", string(got))
}

func TestRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	_, err := store.Open(ctx, "../secret")
	assert.ErrorIs(t, err, object.ErrInvalidKey)

	_, err = store.SaveWithKey(ctx, "/etc/passwd", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, object.ErrInvalidKey)

	_, err = store.Save(ctx, "guest", "../cv.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestCanceledContext(t *testing.T) {
	store := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "guest", "cv.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
