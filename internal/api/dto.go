package api

import (
	"github.com/starford/jyotish/internal/astro"
	"github.com/starford/jyotish/internal/profileservice"
)

// BirthRef selects the birth data for a computation: either inline data or
// the vault path of a stored profile. Exactly one must be set.
type BirthRef struct {
	Birth   *astro.BirthData `json:"birth,omitempty"`
	Profile string           `json:"profile,omitempty"`
}

// ChartRequest is the request body for chart computation endpoints.
type ChartRequest struct {
	BirthRef
	Varga  int `json:"varga,omitempty"`
	Levels int `json:"levels,omitempty"`
	Year   int `json:"year,omitempty"`
}

// CompatibilityRequest pairs two birth references for koota matching.
type CompatibilityRequest struct {
	Partner1 BirthRef `json:"partner1"`
	Partner2 BirthRef `json:"partner2"`
}

// CreateProfileRequest is the request body for creating a vault profile.
type CreateProfileRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// UpdateProfileRequest is the request body for updating a vault profile.
type UpdateProfileRequest struct {
	Content string `json:"content"`
}

// ProfileDetail is the full profile response type (aliased from the domain layer).
type ProfileDetail = profileservice.ProfileDetail

// ProfileListItem is a lightweight item in a list response (aliased from the domain layer).
type ProfileListItem = profileservice.ProfileListItem

// ProfileListResponse wraps paginated profile listings.
type ProfileListResponse struct {
	Profiles []ProfileListItem `json:"profiles"`
	Total    int               `json:"total"`
}
