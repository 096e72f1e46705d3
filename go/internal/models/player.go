package models

// Player represents an athlete registered to a team
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Photo    string   `json:"photo"`
	Age      int      `json:"age"`
	Position Position `json:"position"`
	TeamID   string   `json:"teamId"`
	// TeamName is a snapshot of the owning team's name taken at creation.
	// Read paths resolve it again from TeamID.
	TeamName     string `json:"teamName"`
	Nationality  string `json:"nationality"`
	JerseyNumber int    `json:"jerseyNumber"`
}
