package player

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/rpc"
)

const (
	// PlayerServiceName is the fully-qualified name of the player service
	PlayerServiceName = "liga.v1.PlayerService"

	CreatePlayerProcedure = "/liga.v1.PlayerService/CreatePlayer"
	GetPlayerProcedure    = "/liga.v1.PlayerService/GetPlayer"
)

type CreatePlayerResponse struct {
	Player *models.Player `json:"player"`
}

type GetPlayerRequest struct {
	ID string `json:"id"`
}

type GetPlayerResponse struct {
	Player *models.Player `json:"player"`
}

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
}

// Service exposes the player app over connect
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

var errorMappings = []rpc.ErrorMapping{
	{Err: ErrValidation, Code: connect.CodeInvalidArgument},
	{Err: ErrTeamNotFound, Code: connect.CodeNotFound},
	{Err: ErrNotFound, Code: connect.CodeNotFound},
}

// Handler returns the path prefix and handler to mount on a mux
func (s *Service) Handler() (string, http.Handler) {
	opts := rpc.HandlerOptions()
	mux := http.NewServeMux()
	mux.Handle(CreatePlayerProcedure, connect.NewUnaryHandler(CreatePlayerProcedure, s.CreatePlayer, opts...))
	mux.Handle(GetPlayerProcedure, connect.NewUnaryHandler(GetPlayerProcedure, s.GetPlayer, opts...))
	return "/" + PlayerServiceName + "/", mux
}

// CreatePlayer creates a new player
func (s *Service) CreatePlayer(ctx context.Context, req *connect.Request[CreatePlayerRequest]) (*connect.Response[CreatePlayerResponse], error) {
	player, err := s.app.CreatePlayer(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err, errorMappings...)
	}
	return connect.NewResponse(&CreatePlayerResponse{Player: player}), nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error) {
	player, err := s.app.GetPlayer(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err, errorMappings...)
	}
	return connect.NewResponse(&GetPlayerResponse{Player: player}), nil
}

// Client calls a remote player service
type Client struct {
	createPlayer *connect.Client[CreatePlayerRequest, CreatePlayerResponse]
	getPlayer    *connect.Client[GetPlayerRequest, GetPlayerResponse]
}

// NewClient creates a client for the player service at baseURL
func NewClient(httpClient connect.HTTPClient, baseURL string) *Client {
	opts := rpc.ClientOptions()
	return &Client{
		createPlayer: connect.NewClient[CreatePlayerRequest, CreatePlayerResponse](httpClient, baseURL+CreatePlayerProcedure, opts...),
		getPlayer:    connect.NewClient[GetPlayerRequest, GetPlayerResponse](httpClient, baseURL+GetPlayerProcedure, opts...),
	}
}

func (c *Client) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	resp, err := c.createPlayer.CallUnary(ctx, connect.NewRequest(&req))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Player, nil
}

func (c *Client) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	resp, err := c.getPlayer.CallUnary(ctx, connect.NewRequest(&GetPlayerRequest{ID: id}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Player, nil
}
