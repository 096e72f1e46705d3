package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"

	"github.com/mcdev12/liga/go/internal/bootstrap"
	"github.com/mcdev12/liga/go/internal/config"
	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/player"
	"github.com/mcdev12/liga/go/internal/roster"
	"github.com/mcdev12/liga/go/internal/session"
	"github.com/mcdev12/liga/go/internal/teams"
)

// cliContext is bound to every command's Run method
type cliContext struct {
	ctx     context.Context
	session *session.Session
	roster  *roster.App
	lang    language.Tag
	out     io.Writer
}

func newCLIContext(c *bootstrap.Components, league config.League, out io.Writer) *cliContext {
	return &cliContext{
		ctx:     context.Background(),
		session: c.NewSession(),
		roster:  c.Roster,
		lang:    league.Language(),
		out:     out,
	}
}

func (r *cliContext) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}

type addTeamCmd struct {
	Name    string `arg:"" help:"Team name."`
	City    string `required:"" help:"Home city."`
	Stadium string `required:"" help:"Home stadium."`
	Founded int    `help:"Year the club was founded. Defaults to the current year."`
	Logo    string `help:"Logo URL. A default logo is used when empty."`
}

func (a *addTeamCmd) Run(r *cliContext) error {
	r.session.OpenTeamForm()
	r.session.EditTeamDraft(func(d *teams.CreateTeamRequest) {
		d.Name = a.Name
		d.City = a.City
		d.Stadium = a.Stadium
		d.Logo = a.Logo
		if a.Founded != 0 {
			d.FoundedYear = a.Founded
		}
	})

	team, err := r.session.SubmitTeamForm(r.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Created team %s (%s)\n", team.Name, team.ID)
	return nil
}

type lsTeamsCmd struct{}

func (l *lsTeamsCmd) Run(r *cliContext) error {
	r.renderTeams(r.roster.TeamSummaries(r.ctx))
	return nil
}

type addPlayerCmd struct {
	Name        string `arg:"" help:"Player name."`
	Team        string `required:"" help:"ID of the player's team."`
	Age         int    `default:"20" help:"Age, between 16 and 45."`
	Position    string `default:"Midfielder" help:"Goalkeeper, Defender, Midfielder or Forward (localized labels accepted)."`
	Jersey      int    `default:"1" help:"Jersey number, between 1 and 99."`
	Nationality string `help:"Nationality. Defaults to the league default."`
	Photo       string `help:"Photo URL. A default photo is used when empty."`
}

func (a *addPlayerCmd) Run(r *cliContext) error {
	if err := r.session.OpenPlayerForm(r.ctx); err != nil {
		return err
	}

	position, err := models.ParsePosition(a.Position)
	if err != nil {
		return err
	}
	r.session.EditPlayerDraft(func(d *player.CreatePlayerRequest) {
		d.Name = a.Name
		d.TeamID = a.Team
		d.Age = a.Age
		d.Position = position
		d.JerseyNumber = a.Jersey
		d.Photo = a.Photo
		if a.Nationality != "" {
			d.Nationality = a.Nationality
		}
	})

	p, err := r.session.SubmitPlayerForm(r.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Created player %s #%d for %s (%s)\n", p.Name, p.JerseyNumber, p.TeamName, p.ID)
	return nil
}

type lsPlayersCmd struct {
	Team string `help:"Only list players of this team ID."`
}

func (l *lsPlayersCmd) Run(r *cliContext) error {
	if l.Team != "" {
		r.renderPlayers(r.roster.PlayersByTeam(r.ctx, l.Team))
		return nil
	}
	r.renderPlayers(r.roster.Players(r.ctx))
	return nil
}

type searchCmd struct {
	Term string `arg:"" optional:"" help:"Text to look for."`
}

func (s *searchCmd) Run(r *cliContext) error {
	r.session.SelectTab(roster.TabSearch)
	r.session.SetSearchTerm(s.Term)

	results := r.session.Results(r.ctx)
	switch {
	case results.Prompt:
		fmt.Fprintln(r.out, "Type a name, city, team or position to search.")
	case results.Empty():
		fmt.Fprintf(r.out, "No results for %q\n", results.Term)
	default:
		if len(results.Teams) > 0 {
			r.renderTeams(results.Teams)
		}
		if len(results.Players) > 0 {
			r.renderPlayers(results.Players)
		}
	}
	return nil
}

type tabsCmd struct{}

func (c *tabsCmd) Run(r *cliContext) error {
	t := r.table()
	t.AppendHeader(table.Row{"Tab", "Count"})
	for _, tab := range r.session.Tabs(r.ctx) {
		count := ""
		if tab.Count != nil {
			count = strconv.Itoa(*tab.Count)
		}
		t.AppendRow(table.Row{tab.ID, count})
	}
	t.Render()
	return nil
}

func (r *cliContext) renderTeams(summaries []roster.TeamSummary) {
	t := r.table()
	t.AppendHeader(table.Row{"ID", "Team", "City", "Stadium", "Founded", "Players"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.ID, s.Name, s.City, s.Stadium, s.FoundedYear, s.PlayerCount})
	}
	t.Render()
}

func (r *cliContext) renderPlayers(players []models.Player) {
	t := r.table()
	t.AppendHeader(table.Row{"ID", "#", "Player", "Position", "Team", "Age", "Nationality"})
	for _, p := range players {
		t.AppendRow(table.Row{p.ID, p.JerseyNumber, p.Name, p.Position.Label(r.lang), p.TeamName, p.Age, p.Nationality})
	}
	t.Render()
}
