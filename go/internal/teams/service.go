package teams

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/rpc"
)

const (
	// TeamServiceName is the fully-qualified name of the team service
	TeamServiceName = "liga.v1.TeamService"

	CreateTeamProcedure = "/liga.v1.TeamService/CreateTeam"
	GetTeamProcedure    = "/liga.v1.TeamService/GetTeam"
)

type CreateTeamResponse struct {
	Team *models.Team `json:"team"`
}

type GetTeamRequest struct {
	ID string `json:"id"`
}

type GetTeamResponse struct {
	Team *models.Team `json:"team"`
}

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
}

// Service exposes the teams app over connect
type Service struct {
	app TeamsApp
}

// NewService creates a new teams service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

var errorMappings = []rpc.ErrorMapping{
	{Err: ErrValidation, Code: connect.CodeInvalidArgument},
	{Err: ErrNotFound, Code: connect.CodeNotFound},
}

// Handler returns the path prefix and handler to mount on a mux
func (s *Service) Handler() (string, http.Handler) {
	opts := rpc.HandlerOptions()
	mux := http.NewServeMux()
	mux.Handle(CreateTeamProcedure, connect.NewUnaryHandler(CreateTeamProcedure, s.CreateTeam, opts...))
	mux.Handle(GetTeamProcedure, connect.NewUnaryHandler(GetTeamProcedure, s.GetTeam, opts...))
	return "/" + TeamServiceName + "/", mux
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[CreateTeamRequest]) (*connect.Response[CreateTeamResponse], error) {
	team, err := s.app.CreateTeam(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err, errorMappings...)
	}
	return connect.NewResponse(&CreateTeamResponse{Team: team}), nil
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[GetTeamRequest]) (*connect.Response[GetTeamResponse], error) {
	team, err := s.app.GetTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err, errorMappings...)
	}
	return connect.NewResponse(&GetTeamResponse{Team: team}), nil
}

// Client calls a remote team service
type Client struct {
	createTeam *connect.Client[CreateTeamRequest, CreateTeamResponse]
	getTeam    *connect.Client[GetTeamRequest, GetTeamResponse]
}

// NewClient creates a client for the team service at baseURL
func NewClient(httpClient connect.HTTPClient, baseURL string) *Client {
	opts := rpc.ClientOptions()
	return &Client{
		createTeam: connect.NewClient[CreateTeamRequest, CreateTeamResponse](httpClient, baseURL+CreateTeamProcedure, opts...),
		getTeam:    connect.NewClient[GetTeamRequest, GetTeamResponse](httpClient, baseURL+GetTeamProcedure, opts...),
	}
}

func (c *Client) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	resp, err := c.createTeam.CallUnary(ctx, connect.NewRequest(&req))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Team, nil
}

func (c *Client) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	resp, err := c.getTeam.CallUnary(ctx, connect.NewRequest(&GetTeamRequest{ID: id}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Team, nil
}
