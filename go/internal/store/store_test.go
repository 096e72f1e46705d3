package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/store"
	"github.com/mcdev12/liga/go/internal/store/memkv"
)

type fakeBackend struct {
	mu     sync.Mutex
	data   map[string][]byte
	reads  int
	writes int

	getErr error
	putErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: make(map[string][]byte)}
}

func (f *fakeBackend) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (f *fakeBackend) Put(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.putErr != nil {
		return f.putErr
	}
	f.data[key] = value
	return nil
}

type countingMetrics struct {
	reads, failedReads, writes, failedWrites int
	fallbacks                                []string
}

func (c *countingMetrics) RecordRead(key string, success bool) {
	if success {
		c.reads++
	} else {
		c.failedReads++
	}
}

func (c *countingMetrics) RecordFallback(key, reason string) {
	c.fallbacks = append(c.fallbacks, reason)
}

func (c *countingMetrics) RecordWrite(key string, success bool) {
	if success {
		c.writes++
	} else {
		c.failedWrites++
	}
}

var sampleTeams = []models.Team{
	{ID: "1", Name: "Atlético Nacional", Logo: "https://example.com/nacional.png", FoundedYear: 1947, City: "Medellín", Stadium: "Estadio Atanasio Girardot"},
	{ID: "2", Name: "Millonarios FC", Logo: "https://example.com/millos.png", FoundedYear: 1946, City: "Bogotá", Stadium: "Estadio El Campín"},
}

func TestStore_MissingKeyUsesFallbackAndReadsOnce(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	metrics := &countingMetrics{}
	s := store.New(backend, "liga-teams", sampleTeams, store.WithMetrics(metrics))

	assert.Equal(t, sampleTeams, s.Get(ctx))
	assert.Equal(t, sampleTeams, s.Get(ctx))

	assert.Equal(t, 1, backend.reads)
	assert.Equal(t, 0, backend.writes)
	assert.Equal(t, []string{store.FallbackMissing}, metrics.fallbacks)
}

func TestStore_LoadsStoredValue(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.data["liga-teams"] = []byte(`[{"id":"9","name":"Junior","logo":"","foundedYear":1924,"city":"Barranquilla","stadium":"Metropolitano","playerCount":3}]`)

	s := store.New[[]models.Team](backend, "liga-teams", nil)

	got := s.Get(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Junior", got[0].Name)
	assert.Equal(t, 1924, got[0].FoundedYear)
}

func TestStore_CorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.data["liga-teams"] = []byte(`{not json`)
	metrics := &countingMetrics{}

	s := store.New(backend, "liga-teams", sampleTeams, store.WithMetrics(metrics))

	assert.Equal(t, sampleTeams, s.Get(ctx))
	assert.Equal(t, []string{store.FallbackDecodeError}, metrics.fallbacks)
}

func TestStore_ReadErrorFallsBack(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.getErr = errors.New("storage unavailable")
	metrics := &countingMetrics{}

	s := store.New(backend, "liga-teams", sampleTeams, store.WithMetrics(metrics))

	assert.Equal(t, sampleTeams, s.Get(ctx))
	assert.Equal(t, 1, metrics.failedReads)
	assert.Equal(t, []string{store.FallbackReadError}, metrics.fallbacks)
}

func TestStore_SetWritesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	s := store.New[[]models.Team](backend, "liga-teams", nil)

	s.Set(ctx, sampleTeams)
	assert.Equal(t, 1, backend.writes)

	s.Set(ctx, sampleTeams[:1])
	assert.Equal(t, 2, backend.writes)
	assert.Equal(t, sampleTeams[:1], s.Get(ctx))
	assert.Equal(t, 0, backend.reads)
}

func TestStore_WriteFailureKeepsValueInMemory(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.putErr = errors.New("quota exceeded")
	metrics := &countingMetrics{}
	s := store.New[[]models.Team](backend, "liga-teams", nil, store.WithMetrics(metrics))

	assert.NotPanics(t, func() { s.Set(ctx, sampleTeams) })

	assert.Equal(t, sampleTeams, s.Get(ctx))
	assert.Equal(t, 1, metrics.failedWrites)
	assert.Empty(t, backend.data)
}

func TestStore_UpdateAppendsWithOneWrite(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	s := store.New(backend, "liga-teams", sampleTeams)

	extra := models.Team{ID: "3", Name: "América de Cali", City: "Cali", Stadium: "Pascual Guerrero", FoundedYear: 1927}
	got := s.Update(ctx, func(cur []models.Team) []models.Team {
		next := make([]models.Team, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, extra)
	})

	require.Len(t, got, 3)
	assert.Equal(t, extra, got[2])
	assert.Equal(t, 1, backend.reads)
	assert.Equal(t, 1, backend.writes)
	assert.Len(t, sampleTeams, 2)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := memkv.New()

	players := []models.Player{
		{ID: "1", Name: "James Rodríguez", Photo: "https://example.com/james.jpg", Age: 32, Position: models.PositionMidfielder, TeamID: "2", TeamName: "Millonarios FC", Nationality: "Colombia", JerseyNumber: 10},
		{ID: "2", Name: "Jefferson Lerma", Photo: "https://example.com/lerma.jpg", Age: 29, Position: models.PositionDefender, TeamID: "1", TeamName: "Atlético Nacional", Nationality: "Colombia", JerseyNumber: 8},
	}

	teamStore := store.New[[]models.Team](backend, "liga-teams", nil)
	playerStore := store.New[[]models.Player](backend, "liga-players", nil)
	teamStore.Set(ctx, sampleTeams)
	playerStore.Set(ctx, players)

	reloadedTeams := store.New[[]models.Team](backend, "liga-teams", nil)
	reloadedPlayers := store.New[[]models.Player](backend, "liga-players", nil)

	assert.Equal(t, sampleTeams, reloadedTeams.Get(ctx))
	assert.Equal(t, players, reloadedPlayers.Get(ctx))
}

func TestStore_ResetReloads(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	s := store.New(backend, "liga-teams", sampleTeams)

	_ = s.Get(ctx)
	backend.data["liga-teams"] = []byte(`[]`)
	assert.Len(t, s.Get(ctx), 2)

	s.Reset()
	assert.Empty(t, s.Get(ctx))
	assert.Equal(t, 2, backend.reads)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	s := store.New[[]int](backend, "numbers", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Update(ctx, func(cur []int) []int {
				next := append([]int(nil), cur...)
				return append(next, n)
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Get(ctx), 50)
	assert.Equal(t, 50, backend.writes)
}
