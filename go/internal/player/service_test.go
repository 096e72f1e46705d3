package player

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/liga/go/internal/models"
)

func setupPlayerServer(t *testing.T) *Client {
	t.Helper()
	app, _, _ := setupPlayerApp(t)

	mux := http.NewServeMux()
	mux.Handle(NewService(app).Handler())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), srv.URL)
}

func TestService_CreateAndGetPlayer(t *testing.T) {
	client := setupPlayerServer(t)
	ctx := context.Background()

	created, err := client.CreatePlayer(ctx, CreatePlayerRequest{Name: "Jefferson Lerma", TeamID: "1", Position: models.PositionMidfielder, JerseyNumber: 8, Age: 29})
	require.NoError(t, err)
	assert.Equal(t, "Atlético Nacional", created.TeamName)

	got, err := client.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_CreatePlayer_SpanishPosition(t *testing.T) {
	client := setupPlayerServer(t)

	created, err := client.CreatePlayer(context.Background(), CreatePlayerRequest{Name: "David Ospina", TeamID: "1", Position: "Portero"})
	require.NoError(t, err)
	assert.Equal(t, models.PositionGoalkeeper, created.Position)
}

func TestService_CreatePlayer_Errors(t *testing.T) {
	client := setupPlayerServer(t)
	ctx := context.Background()

	_, err := client.CreatePlayer(ctx, CreatePlayerRequest{Name: "Luis Díaz", TeamID: ""})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.CreatePlayer(ctx, CreatePlayerRequest{Name: "Luis Díaz", TeamID: "404"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
