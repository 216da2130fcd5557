package response_models

// SearchResult entries come from a curated catalog; the search surface is
// presentational and never queries user data.
type SearchResult struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type SearchCatalog struct {
	Query         string         `json:"query"`
	Workouts      []SearchResult `json:"workouts"`
	Meals         []SearchResult `json:"meals"`
	Trainers      []SearchResult `json:"trainers"`
	Professionals []SearchResult `json:"professionals"`
}
