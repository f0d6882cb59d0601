package handlers

import "github.com/rogerio-castellano/dogfinder/internal/models"

const (
	MaxBatch          = 100
	DefaultSearchSize = 25
	MaxSearchWindow   = 10000
	MaxLocationSize   = 100
)

type LoginRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// IDsRequest is a JSON array of dog ids or zip codes.
type IDsRequest struct {
	IDs []string `validate:"min=1,max=100"`
}

type LocationSearchRequest = models.LocationSearch

type LocationSearchResult = models.LocationSearchResult

type DogSearchResult = models.SearchResult

type MatchResult = models.Match
