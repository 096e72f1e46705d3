package teams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTeamsServer(t *testing.T) *Client {
	t.Helper()
	app, _, _ := setupTeamsApp(t)

	mux := http.NewServeMux()
	mux.Handle(NewService(app).Handler())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), srv.URL)
}

func TestService_CreateAndGetTeam(t *testing.T) {
	client := setupTeamsServer(t)
	ctx := context.Background()

	created, err := client.CreateTeam(ctx, CreateTeamRequest{Name: "Atlético Nacional", City: "Medellín", Stadium: "Atanasio Girardot", FoundedYear: 1947})
	require.NoError(t, err)
	assert.Equal(t, "Atlético Nacional", created.Name)
	assert.Equal(t, DefaultLogo, created.Logo)

	got, err := client.GetTeam(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_CreateTeam_InvalidArgument(t *testing.T) {
	client := setupTeamsServer(t)

	_, err := client.CreateTeam(context.Background(), CreateTeamRequest{Name: "", City: "Bogotá", Stadium: "El Campín"})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestService_GetTeam_NotFound(t *testing.T) {
	client := setupTeamsServer(t)

	_, err := client.GetTeam(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
