package filekv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/liga/go/internal/store"
)

func TestBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	b, err := New(filepath.Join(dir, "data"))
	require.NoError(t, err)

	_, err = b.Get(ctx, "liga-teams")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, b.Put(ctx, "liga-teams", []byte(`[{"id":"1"}]`)))
	require.NoError(t, b.Put(ctx, "liga-teams", []byte(`[{"id":"2"}]`)))

	got, err := b.Get(ctx, "liga-teams")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"2"}]`, string(got))

	entries, err := os.ReadDir(filepath.Join(dir, "data"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "liga-teams.json", entries[0].Name())
}

func TestBackend_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	b, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", `a\b`} {
		assert.Error(t, b.Put(ctx, key, []byte("{}")), key)
		_, err := b.Get(ctx, key)
		assert.Error(t, err, key)
	}
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := New("  ")
	assert.Error(t, err)
}

func TestBackend_HonoursCancelledContext(t *testing.T) {
	b, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Put(ctx, "liga-teams", []byte("[]")), context.Canceled)
}
