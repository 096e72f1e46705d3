package teams

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	FoundedYear int    `json:"foundedYear,omitempty"`
	City        string `json:"city"`
	Stadium     string `json:"stadium"`
}

// Defaults are applied to optional fields left empty on creation
type Defaults struct {
	Logo string
}

const (
	// MinFoundedYear is the earliest founding year accepted
	MinFoundedYear = 1800

	// DefaultLogo is used when neither the request nor the config names a logo
	DefaultLogo = "https://images.pexels.com/photos/114296/pexels-photo-114296.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop"
)
