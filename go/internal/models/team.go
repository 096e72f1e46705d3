package models

// Team represents a club registered in the league
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	FoundedYear int    `json:"foundedYear"`
	City        string `json:"city"`
	Stadium     string `json:"stadium"`
}
