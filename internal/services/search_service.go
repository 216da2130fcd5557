package services

import (
	resp "fitlife/internal/models/response_models"
)

// SearchServiceInterface serves the discover screen. The catalog is curated
// content: the query is echoed back but never runs against user data.
type SearchServiceInterface interface {
	Catalog(query string) *resp.SearchCatalog
}

type SearchService struct{}

func NewSearchService() SearchServiceInterface {
	return &SearchService{}
}

func (s *SearchService) Catalog(query string) *resp.SearchCatalog {
	return &resp.SearchCatalog{
		Query: query,
		Workouts: []resp.SearchResult{
			{Title: "Full Body Strength", Subtitle: "45 min • Intermediate"},
			{Title: "HIIT Cardio Blast", Subtitle: "30 min • Advanced"},
			{Title: "Yoga Flow for Beginners", Subtitle: "20 min • Beginner"},
		},
		Meals: []resp.SearchResult{
			{Title: "High-Protein Breakfast Bowl", Subtitle: "450 cal • 35g protein"},
			{Title: "Grilled Chicken Salad", Subtitle: "380 cal • 40g protein"},
			{Title: "Salmon & Quinoa Bowl", Subtitle: "520 cal • 38g protein"},
		},
		Trainers: []resp.SearchResult{
			{Title: "Sarah Johnson", Subtitle: "Certified Personal Trainer • 8 years exp"},
			{Title: "Mike Chen", Subtitle: "Strength & Conditioning Coach • 10 years exp"},
		},
		Professionals: []resp.SearchResult{
			{Title: "Dr. Emily Roberts", Subtitle: "Sports Medicine Specialist"},
			{Title: "Lisa Martinez, RD", Subtitle: "Registered Dietitian Nutritionist"},
		},
	}
}
