package rediskv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/liga/go/internal/store"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)
	return srv
}

func TestBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	srv := startMiniRedis(t)

	b := New(redis.NewClient(&redis.Options{Addr: srv.Addr()}), "liga:")
	t.Cleanup(func() { _ = b.Close() })

	_, err := b.Get(ctx, "liga-teams")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, b.Put(ctx, "liga-teams", []byte(`[{"id":"1"}]`)))

	got, err := b.Get(ctx, "liga-teams")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	raw, err := srv.Get("liga:liga-teams")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, raw)
}

func TestDial(t *testing.T) {
	ctx := context.Background()
	srv := startMiniRedis(t)

	b, err := Dial(ctx, "redis://"+srv.Addr()+"/0", "liga:")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Put(ctx, "k", []byte("v")))
	assert.True(t, srv.Exists("liga:k"))
}

func TestDial_BadURL(t *testing.T) {
	_, err := Dial(context.Background(), "://nope", "liga:")
	assert.Error(t, err)
}

func TestBackend_ServerDown(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	b := New(redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1}), "liga:")
	t.Cleanup(func() { _ = b.Close() })
	srv.Close()

	_, err = b.Get(context.Background(), "liga-teams")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
