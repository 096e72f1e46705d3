package roster

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/rpc"
)

const (
	// RosterServiceName is the fully-qualified name of the roster service
	RosterServiceName = "liga.v1.RosterService"

	ListTeamsProcedure   = "/liga.v1.RosterService/ListTeams"
	ListPlayersProcedure = "/liga.v1.RosterService/ListPlayers"
	SearchProcedure      = "/liga.v1.RosterService/Search"
	TabsProcedure        = "/liga.v1.RosterService/Tabs"
)

type ListTeamsRequest struct{}

type ListTeamsResponse struct {
	Teams []TeamSummary `json:"teams"`
}

// ListPlayersRequest lists every player, or only one team's when TeamID is set
type ListPlayersRequest struct {
	TeamID string `json:"teamId,omitempty"`
}

type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type SearchResponse struct {
	Results Results `json:"results"`
}

type TabsRequest struct{}

type TabsResponse struct {
	Tabs []Tab `json:"tabs"`
}

// RosterApp defines what the service layer needs from the roster application
type RosterApp interface {
	TeamSummaries(ctx context.Context) []TeamSummary
	Players(ctx context.Context) []models.Player
	PlayersByTeam(ctx context.Context, teamID string) []models.Player
	Search(ctx context.Context, term string) Results
	Tabs(ctx context.Context) []Tab
}

// Service exposes the roster views over connect
type Service struct {
	app RosterApp
}

// NewService creates a new roster service
func NewService(app RosterApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the path prefix and handler to mount on a mux
func (s *Service) Handler() (string, http.Handler) {
	opts := rpc.HandlerOptions()
	mux := http.NewServeMux()
	mux.Handle(ListTeamsProcedure, connect.NewUnaryHandler(ListTeamsProcedure, s.ListTeams, opts...))
	mux.Handle(ListPlayersProcedure, connect.NewUnaryHandler(ListPlayersProcedure, s.ListPlayers, opts...))
	mux.Handle(SearchProcedure, connect.NewUnaryHandler(SearchProcedure, s.Search, opts...))
	mux.Handle(TabsProcedure, connect.NewUnaryHandler(TabsProcedure, s.Tabs, opts...))
	return "/" + RosterServiceName + "/", mux
}

// ListTeams returns every team with its player count
func (s *Service) ListTeams(ctx context.Context, req *connect.Request[ListTeamsRequest]) (*connect.Response[ListTeamsResponse], error) {
	return connect.NewResponse(&ListTeamsResponse{Teams: s.app.TeamSummaries(ctx)}), nil
}

// ListPlayers returns players with live team names
func (s *Service) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	var players []models.Player
	if req.Msg.TeamID != "" {
		players = s.app.PlayersByTeam(ctx, req.Msg.TeamID)
	} else {
		players = s.app.Players(ctx)
	}
	return connect.NewResponse(&ListPlayersResponse{Players: players}), nil
}

// Search runs a case-insensitive search over teams and players
func (s *Service) Search(ctx context.Context, req *connect.Request[SearchRequest]) (*connect.Response[SearchResponse], error) {
	return connect.NewResponse(&SearchResponse{Results: s.app.Search(ctx, req.Msg.Term)}), nil
}

// Tabs returns the navigation entries with badge counts
func (s *Service) Tabs(ctx context.Context, req *connect.Request[TabsRequest]) (*connect.Response[TabsResponse], error) {
	return connect.NewResponse(&TabsResponse{Tabs: s.app.Tabs(ctx)}), nil
}

// Client calls a remote roster service
type Client struct {
	listTeams   *connect.Client[ListTeamsRequest, ListTeamsResponse]
	listPlayers *connect.Client[ListPlayersRequest, ListPlayersResponse]
	search      *connect.Client[SearchRequest, SearchResponse]
	tabs        *connect.Client[TabsRequest, TabsResponse]
}

// NewClient creates a client for the roster service at baseURL
func NewClient(httpClient connect.HTTPClient, baseURL string) *Client {
	opts := rpc.ClientOptions()
	return &Client{
		listTeams:   connect.NewClient[ListTeamsRequest, ListTeamsResponse](httpClient, baseURL+ListTeamsProcedure, opts...),
		listPlayers: connect.NewClient[ListPlayersRequest, ListPlayersResponse](httpClient, baseURL+ListPlayersProcedure, opts...),
		search:      connect.NewClient[SearchRequest, SearchResponse](httpClient, baseURL+SearchProcedure, opts...),
		tabs:        connect.NewClient[TabsRequest, TabsResponse](httpClient, baseURL+TabsProcedure, opts...),
	}
}

func (c *Client) ListTeams(ctx context.Context) ([]TeamSummary, error) {
	resp, err := c.listTeams.CallUnary(ctx, connect.NewRequest(&ListTeamsRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Teams, nil
}

func (c *Client) ListPlayers(ctx context.Context, teamID string) ([]models.Player, error) {
	resp, err := c.listPlayers.CallUnary(ctx, connect.NewRequest(&ListPlayersRequest{TeamID: teamID}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Players, nil
}

func (c *Client) Search(ctx context.Context, term string) (Results, error) {
	resp, err := c.search.CallUnary(ctx, connect.NewRequest(&SearchRequest{Term: term}))
	if err != nil {
		return Results{}, err
	}
	return resp.Msg.Results, nil
}

func (c *Client) Tabs(ctx context.Context) ([]Tab, error) {
	resp, err := c.tabs.CallUnary(ctx, connect.NewRequest(&TabsRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Tabs, nil
}
